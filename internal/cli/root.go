package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	rest "github.com/cleitonmarx/symbiont-ai-taskagent/internal/adapters/inbound/http"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	defaultServer = "http://localhost:8080"
	defaultRole   = "premium"
)

// Execute runs the taskagentctl root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("TASKAGENT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:           "taskagentctl",
		Short:         "Talk to a running task agent",
		Long:          "taskagentctl sends prompts to the task agent, lists its tools and manages user sessions over the REST API.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("server", defaultServer, "agent base URL (env TASKAGENT_SERVER)")
	flags.String("user", "", "user id the command acts for (env TASKAGENT_USER)")
	flags.String("role", defaultRole, "role sent with prompts (env TASKAGENT_ROLE)")
	flags.Duration("timeout", 2*time.Minute, "request timeout (env TASKAGENT_TIMEOUT)")
	for _, name := range []string{"server", "user", "role", "timeout"} {
		_ = v.BindPFlag(name, flags.Lookup(name))
	}

	clientFn := func() *Client {
		return NewClient(v.GetString("server"), v.GetDuration("timeout"))
	}

	rootCmd.AddCommand(
		newPromptCmd(v, clientFn),
		newIntentCmd(clientFn),
		newToolsCmd(clientFn),
		newResetCmd(v, clientFn),
		newPomodoroCmd(v, clientFn),
	)
	return rootCmd
}

func requireUser(v *viper.Viper) (string, error) {
	user := v.GetString("user")
	if user == "" {
		return "", fmt.Errorf("a user id is required: pass --user or set TASKAGENT_USER")
	}
	return user, nil
}

func newPromptCmd(v *viper.Viper, clientFn func() *Client) *cobra.Command {
	var model string
	cmd := &cobra.Command{
		Use:   "prompt <text>",
		Short: "Send a prompt to the agent",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := requireUser(v)
			if err != nil {
				return err
			}
			resp, err := clientFn().Prompt(cmd.Context(), rest.PromptReq{
				Prompt:         strings.Join(args, " "),
				UserID:         user,
				UserRole:       v.GetString("role"),
				PreferredModel: model,
			})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), resp.Response)
			return err
		},
	}
	cmd.Flags().StringVar(&model, "model", "", "model overriding the agent default")
	return cmd
}

func newIntentCmd(clientFn func() *Client) *cobra.Command {
	var model string
	cmd := &cobra.Command{
		Use:   "intent <text>",
		Short: "Categorize a prompt without touching any session",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := clientFn().Intent(cmd.Context(), rest.IntentReq{
				Prompt: strings.Join(args, " "),
				Model:  model,
			})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), resp.Intent)
			return err
		},
	}
	cmd.Flags().StringVar(&model, "model", "", "model overriding the agent default")
	return cmd
}

func newToolsCmd(clientFn func() *Client) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List the tools offered to the model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := clientFn().ListTools(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(resp)
			}
			for _, tool := range resp.Tools {
				required := "-"
				if len(tool.Parameters.Required) > 0 {
					required = strings.Join(tool.Parameters.Required, ",")
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\trequired=%s\t%s\n", tool.Name, required, tool.Description); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw declarations")
	return cmd
}

func newResetCmd(v *viper.Viper, clientFn func() *Client) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Drop the conversation and task snapshot of the user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := requireUser(v)
			if err != nil {
				return err
			}
			if err := clientFn().ResetSession(cmd.Context(), user); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "session of %s reset\n", user)
			return err
		},
	}
}

func newPomodoroCmd(v *viper.Viper, clientFn func() *Client) *cobra.Command {
	return &cobra.Command{
		Use:   "pomodoro <task-id>",
		Short: "Advance the pomodoro counter of a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := requireUser(v)
			if err != nil {
				return err
			}
			task, err := clientFn().AdvancePomodoro(cmd.Context(), user, args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %q %d/%d %s\n",
				task.ID, task.Title, task.PomodoroNumber, task.PomodoroRequiredNumber, task.Status)
			return err
		},
	}
}
