package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sirius-scholar/scholar"
)

var UsersCmd = cobra.Command{
	Use:   "users [query]",
	Short: "List the researchers matching query",
	Long:  "List the researchers whose last name or area contains query. Without query, list them all.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}

		users, err := client.Users(cmd.Context())
		if err != nil {
			return err
		}

		query := ""
		if len(args) == 1 {
			query = args[0]
		}

		out := cmd.OutOrStdout()
		for _, u := range scholar.FilterUsers(users, query) {
			role := ""
			if u.Role.IsAdmin() {
				role = " (admin)"
			}
			fmt.Fprintf(out, "%d\t%s%s\t%s\n", u.ID, u.FullName(), role, u.Area)
		}
		return nil
	},
}

var HIndexCmd = cobra.Command{
	Use:   "hindex <user id>",
	Short: "Print the h-index of a researcher",
	Long:  "Print the h-index of a researcher, computed from the citations of their articles",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid user id %q", args[0])
		}

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		users, err := client.Users(ctx)
		if err != nil {
			return err
		}

		i := scholar.FindUser(users, userID)
		if i < 0 {
			return fmt.Errorf("no user with id %d", userID)
		}

		articles, err := client.Articles(ctx)
		if err != nil {
			return err
		}

		owned := scholar.ArticlesOf(articles, users[i])
		titles := make([]string, len(owned))
		for j, a := range owned {
			titles[j] = fmt.Sprintf("  %s (%d)", a.Title, a.Citations)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: h-index %d, %d publications\n", users[i].FullName(), scholar.ArticleHIndex(owned), len(owned))
		if len(titles) > 0 {
			fmt.Fprintln(out, strings.Join(titles, "\n"))
		}
		return nil
	},
}
