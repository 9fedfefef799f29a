package main

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/bobinette/notenet/gin"
	"github.com/bobinette/notenet/web"
)

var WebCmd = cobra.Command{
	Use:   "web",
	Short: "Start the web server",
	Long:  "Start the web server serving the notes, teams and grants routes",
	Run: func(cmd *cobra.Command, args []string) {
		srv := gin.New()

		key := []byte(signingKey.Key)
		authenticator := web.NewAuthenticator(userService)

		web.RegisterUserRoutes(srv, userService, key, authenticator)
		web.RegisterNoteRoutes(srv, noteService, key, authenticator)
		web.RegisterParagraphRoutes(srv, paragraphService, key, authenticator)
		web.RegisterTeamRoutes(srv, teamService, key, authenticator)
		web.RegisterGrantRoutes(srv, grantService, key, authenticator)

		addr := config.Web.Addr
		if addr == "" {
			addr = ":1705"
		}

		logger.Print("server started, listening on", addr)
		logger.Fatal(http.ListenAndServe(addr, srv))
	},
}
