package main

import "github.com/cleitonmarx/symbiont-ai-taskagent/internal/app"

func main() {
	err := app.NewTaskAgentApp().Run()
	if err != nil {
		panic(err)
	}
}
