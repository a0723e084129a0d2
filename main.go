package main

import "github.com/Joshua-Kaluf/r2slurm/cmd"

func main() {
	cmd.Execute()
}
