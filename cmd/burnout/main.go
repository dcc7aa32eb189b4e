package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/burnout-fit/burnout/internal/profile"
	"github.com/burnout-fit/burnout/internal/version"
	"github.com/burnout-fit/burnout/server"
	"github.com/burnout-fit/burnout/store"
	"github.com/burnout-fit/burnout/store/db"
)

const greetingBanner = `Burnout - track your fitness, talk to BurnBot.`

var rootCmd = &cobra.Command{
	Use:   "burnout",
	Short: "Fitness tracking service with an insights dashboard and a RAG chatbot",
	Run: func(_ *cobra.Command, _ []string) {
		instanceProfile := &profile.Profile{
			Mode:         viper.GetString("mode"),
			Addr:         viper.GetString("addr"),
			Port:         viper.GetInt("port"),
			Data:         viper.GetString("data"),
			Driver:       viper.GetString("driver"),
			DSN:          viper.GetString("dsn"),
			DocPath:      viper.GetString("doc-path"),
			FoodDataPath: viper.GetString("food-data"),
			Version:      version.GetCurrentVersion(viper.GetString("mode")),
		}
		instanceProfile.FromEnv()
		if err := instanceProfile.Validate(); err != nil {
			slog.Error("invalid configuration", slog.String("error", err.Error()))
			os.Exit(1)
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		dbDriver, err := db.NewDBDriver(instanceProfile)
		if err != nil {
			slog.Error("failed to create db driver", slog.String("error", err.Error()))
			os.Exit(1)
		}

		storeInstance := store.New(dbDriver, instanceProfile)
		if err := storeInstance.Migrate(ctx); err != nil {
			slog.Error("failed to migrate database", slog.String("error", err.Error()))
			os.Exit(1)
		}

		s, err := server.NewServer(ctx, instanceProfile, storeInstance)
		if err != nil {
			slog.Error("failed to create server", slog.String("error", err.Error()))
			os.Exit(1)
		}

		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			sig := <-sigs
			slog.Info("received signal, shutting down", slog.String("signal", sig.String()))
			s.Shutdown(ctx)
			cancel()
		}()

		printGreetings(instanceProfile)

		if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server stopped", slog.String("error", err.Error()))
			cancel()
		}

		<-ctx.Done()
	},
}

func init() {
	viper.SetDefault("mode", "dev")
	viper.SetDefault("addr", "")
	viper.SetDefault("port", 8230)
	viper.SetDefault("data", ".")
	viper.SetDefault("driver", "sqlite")

	rootCmd.PersistentFlags().String("mode", "dev", `mode of the server, can be "prod" or "dev"`)
	rootCmd.PersistentFlags().String("addr", "", "binding address for the server")
	rootCmd.PersistentFlags().Int("port", 8230, "binding port for the server")
	rootCmd.PersistentFlags().String("data", ".", "data directory")
	rootCmd.PersistentFlags().String("driver", "sqlite", `database driver, "sqlite" or "postgres"`)
	rootCmd.PersistentFlags().String("dsn", "", "database source name")
	rootCmd.PersistentFlags().String("doc-path", "", "fitness reference document for the chatbot corpus")
	rootCmd.PersistentFlags().String("food-data", "", "food calorie CSV loaded at startup")

	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		panic(err)
	}

	viper.SetEnvPrefix("burnout")
	viper.AutomaticEnv()
}

func printGreetings(p *profile.Profile) {
	fmt.Println(greetingBanner)
	fmt.Printf("version %s, mode %s, driver %s\n", p.Version, p.Mode, p.Driver)
	fmt.Printf("listening on %s:%d\n", p.Addr, p.Port)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("failed to start", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
