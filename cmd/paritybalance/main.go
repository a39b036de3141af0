package main

import "paritybalance/internal/app"

func main() {
	app.Run()
}
