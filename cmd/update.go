package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/adixit/intervue/internal/selfupdate"
	"github.com/spf13/cobra"
)

var checkUpdateCmd = &cobra.Command{
	Use:   "check-update",
	Short: "Check whether a newer release is available",
	RunE: func(cmd *cobra.Command, args []string) error {
		checker := selfupdate.NewChecker()

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		res, err := checker.Check(ctx, &selfupdate.CheckInput{Version: version})
		if err != nil {
			return err
		}

		switch {
		case res.UpdateAvailable:
			fmt.Printf("Update available: %s → %s\n", res.CurrentVersion, res.LatestVersion)
			fmt.Println(res.ReleaseURL)
			fmt.Println("Run `intervue update` to install it.")
		case version == "(devel)":
			fmt.Printf("Development build; latest release is %s\n", res.LatestVersion)
		default:
			fmt.Printf("intervue %s is up to date.\n", version)
		}
		return nil
	},
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update intervue to the latest version",
	RunE: func(cmd *cobra.Command, args []string) error {
		checker := selfupdate.NewChecker(selfupdate.WithTimeout(2 * time.Minute))

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		err := checker.Update(ctx, &selfupdate.UpdateInput{
			CurrentVersion: version,
		}, func(p selfupdate.UpdateProgress) {
			fmt.Println(p.Message)
		})

		if err == nil {
			return nil
		}

		if errors.Is(err, selfupdate.ErrDevBuild) {
			fmt.Println("Cannot update a development build. Install a release build first.")
			return nil
		}
		if errors.Is(err, selfupdate.ErrAlreadyLatest) {
			fmt.Println("Already running the latest version.")
			return nil
		}
		if os.IsPermission(err) {
			return fmt.Errorf("%w\n\nTry running: sudo intervue update", err)
		}

		return err
	},
}
