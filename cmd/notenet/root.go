package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/bobinette/notenet"
	"github.com/bobinette/notenet/bleve"
	"github.com/bobinette/notenet/bolt"
	"github.com/bobinette/notenet/cayley"
	"github.com/bobinette/notenet/log"
	"github.com/bobinette/notenet/mysql"
	"github.com/bobinette/notenet/permission"
	"github.com/bobinette/notenet/services"
)

var (
	// flags
	env        string
	configFile string

	// logger
	logger log.Logger

	// signing key
	signingKey notenet.SigningKey

	// drivers
	boltDriver  *bolt.Driver
	cayleyStore *cayley.Store
	mysqlDriver *mysql.Driver
	noteIndex   *bleve.NoteIndex

	// services
	userService      *services.UserService
	noteService      *services.NoteService
	teamService      *services.TeamService
	grantService     *services.GrantService
	paragraphService *services.ParagraphService
)

type Configuration struct {
	Auth struct {
		Key string `toml:"key"`
	} `toml:"auth"`
	Bolt struct {
		Store string `toml:"store"`
	} `toml:"bolt"`
	Bleve struct {
		Store string `toml:"store"`
	} `toml:"bleve"`
	Cayley struct {
		Store string `toml:"store"`
	} `toml:"cayley"`
	MySQL struct {
		Enabled  bool   `toml:"enabled"`
		Host     string `toml:"host"`
		Port     string `toml:"port"`
		Username string `toml:"username"`
		Password string `toml:"password"`
		Database string `toml:"database"`
	} `toml:"mysql"`
	Web struct {
		Addr string `toml:"addr"`
	} `toml:"web"`
}

var config Configuration

func init() {
	RootCmd.PersistentFlags().StringVar(&env, "env", "dev", "environment")
	RootCmd.PersistentFlags().StringVar(&configFile, "config", "", "configuration file")

	RootCmd.AddCommand(&WebCmd)
	RootCmd.AddCommand(&TokenCmd)
}

var RootCmd = cobra.Command{
	Use:   "notenet",
	Short: "Share your notes with the right people",
	Long:  "Share your notes with the right people",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = log.New(env)

		if configFile == "" {
			configFile = path.Join("configuration", fmt.Sprintf("config.%s.toml", env))
		}

		cfgData, err := ioutil.ReadFile(configFile)
		if err != nil {
			logger.Fatal("error reading configuration:", err)
		}

		err = toml.Unmarshal(cfgData, &config)
		if err != nil {
			logger.Fatal("error unmarshalling configuration:", err)
		}

		// Signing key
		keyData, err := ioutil.ReadFile(config.Auth.Key)
		if err != nil {
			logger.Fatal("could not open key file:", err)
		}
		err = json.Unmarshal(keyData, &signingKey)
		if err != nil {
			logger.Fatal("could not read key file:", err)
		}

		// Drivers
		boltDriver = &bolt.Driver{}
		if err := boltDriver.Open(config.Bolt.Store); err != nil {
			logger.Fatal("could not open bolt:", err)
		}

		noteIndex = &bleve.NoteIndex{}
		if err := noteIndex.Open(config.Bleve.Store); err != nil {
			logger.Fatal("could not open bleve:", err)
		}

		cayleyStore, err = cayley.NewStore(config.Cayley.Store)
		if err != nil {
			logger.Fatal("could not open cayley:", err)
		}

		// Repositories
		noteStore := &bolt.NoteStore{Driver: boltDriver}
		paragraphStore := &bolt.ParagraphStore{Driver: boltDriver}
		userStore := &bolt.UserStore{Driver: boltDriver}
		teamRepository := cayley.NewTeamRepository(cayleyStore)

		var grantStore services.GrantStore
		var teamGrantStore services.TeamGrantStore
		if config.MySQL.Enabled {
			mysqlDriver, err = mysql.NewDriver(
				config.MySQL.Host,
				config.MySQL.Port,
				config.MySQL.Username,
				config.MySQL.Password,
				config.MySQL.Database,
			)
			if err != nil {
				logger.Fatal("could not connect to mysql:", err)
			}
			if err := mysqlDriver.Migrate(); err != nil {
				logger.Fatal("could not migrate mysql:", err)
			}

			grantStore = mysql.NewGrantRepository(mysqlDriver)
			teamGrantStore = mysql.NewTeamGrantRepository(mysqlDriver)
		} else {
			grantStore = &bolt.GrantStore{Driver: boltDriver}
			teamGrantStore = &bolt.TeamGrantStore{Driver: boltDriver}
		}

		// Services
		permissionService := permission.NewService(grantStore, teamGrantStore, teamRepository, noteStore)
		userService = services.NewUserService(userStore)
		noteService = services.NewNoteService(noteStore, paragraphStore, grantStore, teamGrantStore, noteIndex, permissionService, userService)
		teamService = services.NewTeamService(teamRepository, userStore, teamGrantStore)
		grantService = services.NewGrantService(grantStore, teamGrantStore, teamRepository, permissionService, userService)
		paragraphService = services.NewParagraphService(paragraphStore, permissionService)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if boltDriver != nil {
			boltDriver.Close()
		}
		if cayleyStore != nil {
			cayleyStore.Close()
		}
		if noteIndex != nil {
			noteIndex.Close()
		}
		if mysqlDriver != nil {
			mysqlDriver.Close()
		}
	},
}
