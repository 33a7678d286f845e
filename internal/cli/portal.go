package cli

import (
	"os"

	"github.com/Luka12345937/MULUMBA-Beleive/internal/console"
	"github.com/spf13/cobra"
)

func runPortal(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	services, err := initServices(ctx)
	if err != nil {
		return err
	}
	defer services.Close()

	in := cmd.InOrStdin()
	out := cmd.OutOrStdout()

	var secrets console.SecretReader
	if f, ok := in.(*os.File); ok {
		secrets = console.TerminalSecrets(f, out)
	}

	services.Log.Info("session started")

	session := console.NewSession(services.Registry, services.Payments, in, out, secrets)
	runErr := session.Run(ctx)

	registered, err := services.Registry.Count(ctx)
	if err != nil {
		services.Log.Error("failed to count students", "error", err)
	}
	services.Log.Info("session ended", "registered_students", registered)

	return runErr
}
