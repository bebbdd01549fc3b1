package main

import (
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: MsgCheckShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, defs, err := loadRegistry(args[0])
			if err != nil {
				return err
			}

			cmd.Printf(MsgCheckOKFormat, formatBold("OK"), reg.Count(), len(defs.Placeholders))
			return nil
		},
	}
}

func newAliasesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "aliases <file> <name>",
		Short: MsgAliasesShort,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, _, err := loadRegistry(args[0])
			if err != nil {
				return err
			}

			found := reg.Aliases(args[1])
			if len(found) == 0 {
				cmd.Println(MsgNoAliases)
				return nil
			}
			for _, alias := range found {
				cmd.Println(alias)
			}
			return nil
		},
	}
}

func newCanonicalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "canonical <file> <name>",
		Short: MsgCanonicalShort,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, _, err := loadRegistry(args[0])
			if err != nil {
				return err
			}

			canonical, err := reg.CanonicalName(args[1])
			if err != nil {
				return err
			}
			cmd.Println(canonical)
			return nil
		},
	}
}
