package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// newRootCommand creates the root cobra command and wires all
// subcommands to their handlers.
func (a *App) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "tf",
		Short: "A command-line task manager",
		Long: `TaskFlow (tf) is a command-line application for managing tasks across
categories and priority lanes.

EXAMPLES:
  tf login alex@example.com                # Sign in (creates a session)
  tf add "Buy groceries" -p Low -c cat_3   # Add a task
  tf list --search milk                    # Filter tasks by text
  tf list --sort dueDate --direction asc   # Soonest due dates first
  tf board                                 # Tasks grouped by priority lane
  tf move 1a2b3c high                      # Reassign a task's priority
  tf move 1a2b3c done                      # Mark a task completed
  tf done 1a2b3c                           # Toggle a task's completion
  tf calendar 2026-09                      # Tasks grouped by due date

CONFIGURATION:
  TF_DB_DIR                                Database directory (default: ~/.taskflow)
  TF_DB_FILENAME                           Database filename (default: taskflow.db)
  TF_DB_QUERY_TIMEOUT                      Query timeout (default: 10s)
  TF_SESSION_SLOT                          Session slot name (default: taskflow_user)
  TF_AUTH_LATENCY                          Simulated auth round-trip (default: 0)
  TF_VALIDATION_TITLE_MAX                  Max task title length (default: 255)
  TF_VALIDATION_CATEGORY_NAME_MAX          Max category name length (default: 100)
  TF_VALIDATION_PASSWORD_MIN               Min password length (default: 8)
  TF_SEED                                  Seed default categories and sample tasks (default: true)

GETTING HELP:
  tf [command] --help                      # Get help for any specific command`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	a.addAuthCommands(root)
	a.addTaskCommands(root)
	a.addViewCommands(root)
	a.addCategoryCommands(root)

	return root
}

func (a *App) addAuthCommands(root *cobra.Command) {
	loginCmd := &cobra.Command{
		Use:   "login [email] [display name]",
		Short: "Sign in and start a session",
		Long:  "Sign in with an email address. The session persists until logout.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			displayName := ""
			if len(args) > 1 {
				displayName = args[1]
			}
			return NewLoginCommand(a).Execute(cmd.Context(), args[0], displayName)
		},
	}

	signupCmd := &cobra.Command{
		Use:   "signup [email] [display name]",
		Short: "Create an account and start a session",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, _ := cmd.Flags().GetString("password")
			confirm, _ := cmd.Flags().GetString("confirm")
			displayName := ""
			if len(args) > 1 {
				displayName = args[1]
			}
			return NewSignupCommand(a).Execute(cmd.Context(), args[0], displayName, password, confirm)
		},
	}
	signupCmd.Flags().String("password", "", "Account password")
	signupCmd.Flags().String("confirm", "", "Password confirmation")

	logoutCmd := &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewLogoutCommand(a).Execute(cmd.Context())
		},
	}

	whoamiCmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewWhoamiCommand(a).Execute(cmd.Context())
		},
	}

	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Manage the signed-in account",
	}

	accountUpdateCmd := &cobra.Command{
		Use:   "update",
		Short: "Update profile fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := AccountUpdateOptions{}
			if cmd.Flags().Changed("email") {
				email, _ := cmd.Flags().GetString("email")
				opts.Email = &email
			}
			if cmd.Flags().Changed("name") {
				name, _ := cmd.Flags().GetString("name")
				opts.DisplayName = &name
			}
			return NewAccountCommand(a).ExecuteUpdate(cmd.Context(), opts)
		},
	}
	accountUpdateCmd.Flags().String("email", "", "New email address")
	accountUpdateCmd.Flags().String("name", "", "New display name")

	accountPasswdCmd := &cobra.Command{
		Use:   "passwd",
		Short: "Change the account password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			current, _ := cmd.Flags().GetString("current")
			newPassword, _ := cmd.Flags().GetString("new")
			confirm, _ := cmd.Flags().GetString("confirm")
			return NewAccountCommand(a).ExecutePasswd(cmd.Context(), current, newPassword, confirm)
		},
	}
	accountPasswdCmd.Flags().String("current", "", "Current password")
	accountPasswdCmd.Flags().String("new", "", "New password")
	accountPasswdCmd.Flags().String("confirm", "", "New password confirmation")

	accountDeleteCmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete the account and all its data",
		Long: `Delete the account, end the session, and remove all tasks and
categories. This operation cannot be undone; pass --yes to confirm.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			confirmed, _ := cmd.Flags().GetBool("yes")
			return NewAccountCommand(a).ExecuteDelete(cmd.Context(), confirmed)
		},
	}
	accountDeleteCmd.Flags().Bool("yes", false, "Confirm account deletion")

	accountCmd.AddCommand(accountUpdateCmd, accountPasswdCmd, accountDeleteCmd)

	root.AddCommand(loginCmd, signupCmd, logoutCmd, whoamiCmd, accountCmd)
}

func (a *App) addTaskCommands(root *cobra.Command) {
	addCmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a new task",
		Long: `Add a new task. New tasks appear at the top of the list.

Examples:
  tf add "Buy groceries"
  tf add "Review financials" -p High -c Work --due tomorrow
  tf add "Call dentist" --due 2026-09-15 -d "Ask about the invoice"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := AddOptions{}
			opts.Description, _ = cmd.Flags().GetString("desc")
			opts.Priority, _ = cmd.Flags().GetString("priority")
			opts.Category, _ = cmd.Flags().GetString("category")
			opts.Due, _ = cmd.Flags().GetString("due")
			return NewAddCommand(a).Execute(cmd.Context(), strings.Join(args, " "), opts)
		},
	}
	addCmd.Flags().StringP("desc", "d", "", "Task description")
	addCmd.Flags().StringP("priority", "p", "", "Priority: High, Medium, or Low (default Medium)")
	addCmd.Flags().StringP("category", "c", "", "Category id or name")
	addCmd.Flags().String("due", "", "Due date: YYYY-MM-DD, today, or tomorrow")

	editCmd := &cobra.Command{
		Use:   "edit [task]",
		Short: "Edit a task",
		Long: `Edit a task identified by id or id prefix. Only the fields you pass
change; everything else keeps its current value.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := EditOptions{}
			if cmd.Flags().Changed("title") {
				title, _ := cmd.Flags().GetString("title")
				opts.Title = &title
			}
			if cmd.Flags().Changed("desc") {
				desc, _ := cmd.Flags().GetString("desc")
				opts.Description = &desc
			}
			if cmd.Flags().Changed("priority") {
				priority, _ := cmd.Flags().GetString("priority")
				opts.Priority = &priority
			}
			if cmd.Flags().Changed("category") {
				category, _ := cmd.Flags().GetString("category")
				opts.Category = &category
			}
			if cmd.Flags().Changed("due") {
				due, _ := cmd.Flags().GetString("due")
				opts.Due = &due
			}
			opts.ClearDue, _ = cmd.Flags().GetBool("clear-due")
			return NewEditCommand(a).Execute(cmd.Context(), args[0], opts)
		},
	}
	editCmd.Flags().StringP("title", "t", "", "New title")
	editCmd.Flags().StringP("desc", "d", "", "New description")
	editCmd.Flags().StringP("priority", "p", "", "New priority: High, Medium, or Low")
	editCmd.Flags().StringP("category", "c", "", "New category id or name")
	editCmd.Flags().String("due", "", "New due date: YYYY-MM-DD, today, or tomorrow")
	editCmd.Flags().Bool("clear-due", false, "Remove the due date")

	doneCmd := &cobra.Command{
		Use:   "done [task]",
		Short: "Toggle a task's completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewDoneCommand(a).Execute(cmd.Context(), args[0])
		},
	}

	rmCmd := &cobra.Command{
		Use:   "rm [task]",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewDeleteCommand(a).Execute(cmd.Context(), args[0])
		},
	}

	moveCmd := &cobra.Command{
		Use:   "move [task] [lane]",
		Short: "Move a task to a lane",
		Long: `Move a task to a board lane. Lanes are the three priorities (high,
medium, low) plus the two completion columns (active, done).

Examples:
  tf move 1a2b3c high     # Reassign priority
  tf move 1a2b3c done     # Mark completed
  tf move 1a2b3c active   # Mark not completed`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewMoveCommand(a).Execute(cmd.Context(), args[0], args[1])
		},
	}

	root.AddCommand(addCmd, editCmd, doneCmd, rmCmd, moveCmd)
}

func (a *App) addViewCommands(root *cobra.Command) {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List tasks split into active and completed sections.

Sort options: priority, dueDate, alphabetical, created
Direction: asc or desc (dueDate always keeps undated tasks last)

Examples:
  tf list                                  # All tasks, highest priority first
  tf list --search milk                    # Title or description contains "milk"
  tf list -c Work -p High                  # Filters compose
  tf list --sort dueDate --direction asc   # Soonest first`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := ListOptions{}
			opts.Search, _ = cmd.Flags().GetString("search")
			opts.Category, _ = cmd.Flags().GetString("category")
			opts.Priority, _ = cmd.Flags().GetString("priority")
			opts.SortBy, _ = cmd.Flags().GetString("sort")
			opts.Direction, _ = cmd.Flags().GetString("direction")
			return NewListCommand(a).Execute(cmd.Context(), opts)
		},
	}
	listCmd.Flags().StringP("search", "s", "", "Filter by text in title or description")
	listCmd.Flags().StringP("category", "c", "", "Filter by category id or name")
	listCmd.Flags().StringP("priority", "p", "", "Filter by priority: High, Medium, Low, or All")
	listCmd.Flags().String("sort", "", "Sort by: priority, dueDate, alphabetical, created")
	listCmd.Flags().String("direction", "", "Sort direction: asc or desc")

	boardCmd := &cobra.Command{
		Use:   "board",
		Short: "Show tasks grouped by priority lane",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewBoardCommand(a).Execute(cmd.Context())
		},
	}

	calendarCmd := &cobra.Command{
		Use:   "calendar [month]",
		Short: "Show tasks grouped by due date",
		Long: `Show tasks grouped by due date, optionally restricted to a single
month given as YYYY-MM. Tasks without a due date are not shown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			month := ""
			if len(args) > 0 {
				month = args[0]
			}
			return NewCalendarCommand(a).Execute(cmd.Context(), month)
		},
	}

	root.AddCommand(listCmd, boardCmd, calendarCmd)
}

func (a *App) addCategoryCommands(root *cobra.Command) {
	categoryCmd := &cobra.Command{
		Use:     "category",
		Aliases: []string{"cat"},
		Short:   "Manage categories",
	}

	categoryAddCmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a category",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			color, _ := cmd.Flags().GetString("color")
			return NewCategoryCommand(a).ExecuteAdd(cmd.Context(), strings.Join(args, " "), color)
		},
	}
	categoryAddCmd.Flags().String("color", "bg-gray-500", "Display color token")

	categoryListCmd := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewCategoryCommand(a).ExecuteList(cmd.Context())
		},
	}

	categoryRenameCmd := &cobra.Command{
		Use:   "rename [category] [new name]",
		Short: "Rename a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewCategoryCommand(a).ExecuteRename(cmd.Context(), args[0], args[1])
		},
	}

	categoryRmCmd := &cobra.Command{
		Use:   "rm [category]",
		Short: "Delete a category",
		Long: `Delete a category by id or name. Default categories cannot be
deleted. Tasks keep their category reference and display as
uncategorized.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewCategoryCommand(a).ExecuteDelete(cmd.Context(), args[0])
		},
	}

	categoryCmd.AddCommand(categoryAddCmd, categoryListCmd, categoryRenameCmd, categoryRmCmd)
	root.AddCommand(categoryCmd)
}
