package main

import "github.com/leaxer-ai/leaxer-desktop/internal/app"

func main() {
	app.Run()
}
