package cli

import (
	"errors"
	"fmt"

	"github.com/Luka12345937/MULUMBA-Beleive/internal/core/domain"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:       "validate <name|email|password> <value>",
	Short:     "Check a registration field",
	Long:      "Check a single registration field against the rules applied at sign-up",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"name", "email", "password"},
	RunE: func(cmd *cobra.Command, args []string) error {
		field, value := args[0], args[1]
		v := domain.NewValidator(cfg.InstitutionDomain)

		var err error
		switch field {
		case "name":
			err = v.CheckName(value)
		case "email":
			err = v.CheckEmail(value)
		case "password":
			err = v.CheckPassword(value)
		default:
			return fmt.Errorf("unknown field %q: expected name, email or password", field)
		}

		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return fmt.Errorf("invalid %s: %s", field, verr.Reason)
		}
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "valid")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
