package main

import "futurebuddy-desktop/internal/bootstrap"

func main() {
	bootstrap.Main()
}
