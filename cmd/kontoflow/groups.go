package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mkempf/kontoflow/internal/cli"
	"github.com/mkempf/kontoflow/internal/session"
)

func groupsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "groups",
		Short: "Manage category groups",
	}

	cmd.AddCommand(listGroupsCmd())
	cmd.AddCommand(createGroupCmd())
	cmd.AddCommand(showGroupCmd())
	cmd.AddCommand(renameGroupCmd())
	cmd.AddCommand(recolorGroupCmd())
	cmd.AddCommand(deleteGroupCmd())

	return cmd
}

func listGroupsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all groups",
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := loadSession()
			if err != nil {
				return err
			}

			groups := s.Groups()
			if len(groups) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No groups yet. Use 'kontoflow groups create' to add one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Name"),
				cli.HeaderStyle.Render("Categories"))

			for _, grp := range groups {
				count := 0
				for _, cat := range s.Categories() {
					if cat.GroupID != nil && *cat.GroupID == grp.ID {
						count++
					}
				}
				fmt.Fprintf(w, "%d\t%s %s\t%d\n", grp.ID, cli.FormatSwatch(grp.Color), grp.Name, count)
			}

			return nil
		},
	}
}

func createGroupCmd() *cobra.Command {
	var color string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new group",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := loadSession()
			if err != nil {
				return err
			}

			if color == "" {
				color = viper.GetString("defaults.group_color")
			}
			grp := s.CreateGroup(args[0], color)
			if err := saveTaxonomy(s); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Group %q created with id %d", grp.Name, grp.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&color, "color", "", "display color (hex)")
	return cmd
}

func showGroupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show the transactions of a group's categories",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := parseID(args[0], "group")
			if err != nil {
				return err
			}

			s, err := loadSession()
			if err != nil {
				return err
			}

			grp, err := s.Group(id)
			if err != nil {
				return err
			}

			members := make(map[int]bool)
			for _, cat := range s.Categories() {
				if cat.GroupID != nil && *cat.GroupID == id {
					members[cat.ID] = true
				}
			}

			fmt.Println(cli.FormatTitle(fmt.Sprintf("%s %s", cli.FormatSwatch(grp.Color), grp.Name)))

			rows := make([]transactionRow, 0)
			for idx, trx := range s.Transactions() {
				if trx.CategoryID != nil && members[*trx.CategoryID] {
					rows = append(rows, transactionRow{position: idx, trx: trx})
				}
			}
			printTransactionRows(s, rows)
			return nil
		},
	}
}

func renameGroupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Rename a group",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return mutateGroup(args[0], func(s *session.Session, id int) error {
				return s.RenameGroup(id, args[1])
			}, fmt.Sprintf("Group renamed to %q", args[1]))
		},
	}
}

func recolorGroupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "color <id> <hex-color>",
		Short: "Change a group's color",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return mutateGroup(args[0], func(s *session.Session, id int) error {
				return s.RecolorGroup(id, args[1])
			}, fmt.Sprintf("Group color set to %s", args[1]))
		},
	}
}

func deleteGroupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a group",
		Long:  `Delete a group. Its categories stay but lose the group reference.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return mutateGroup(args[0], func(s *session.Session, id int) error {
				return s.DeleteGroup(id)
			}, "Group deleted")
		},
	}
}

func mutateGroup(idArg string, op func(*session.Session, int) error, success string) error {
	id, err := parseID(idArg, "group")
	if err != nil {
		return err
	}

	s, err := loadSession()
	if err != nil {
		return err
	}

	if err := op(s, id); err != nil {
		return err
	}
	if err := saveTaxonomy(s); err != nil {
		return err
	}

	fmt.Println(cli.FormatSuccess(success))
	return nil
}
