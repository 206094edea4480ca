package main

import (
	"gitlab.com/vidpay-rewards/rewards_api/cmd"
)

func main() {
	cmd.Execute()
}
