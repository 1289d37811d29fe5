package main

import "internship_backend/internal/app"

func main() {
	app.Run()
}
