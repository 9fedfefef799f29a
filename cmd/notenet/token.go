package main

import (
	"github.com/spf13/cobra"

	"github.com/bobinette/notenet/jwt"
)

var TokenCmd = cobra.Command{
	Use:   "token <user id>",
	Short: "Mint a token for a user",
	Long:  "Mint a signed token for a user id, to register or call the api with",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			logger.Fatal("token needs exactly one argument: the user id")
		}

		encoder := jwt.NewEncodeDecoder([]byte(signingKey.Key))
		token, err := encoder.Encode(args[0])
		if err != nil {
			logger.Fatal("could not encode token:", err)
		}

		logger.Printf("token for user %s: %s", args[0], token)
	},
}
