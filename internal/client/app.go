// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/simran-bhella/twitter-clone/internal/adapter"
	"github.com/simran-bhella/twitter-clone/internal/logger"
	"github.com/simran-bhella/twitter-clone/models"
)

type command struct {
	usage string
	run   func(ctx context.Context, args []string) error
}

var _ Client = (*App)(nil)

type App struct {
	adapter  adapter.ServerAdapter
	tokens   TokenStore
	out      io.Writer
	commands map[string]command
	logger   *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, tokens TokenStore, out io.Writer, logger *logger.Logger) (*App, error) {
	if serverAdapter == nil || tokens == nil || out == nil {
		return nil, errors.New("client app requires an adapter, a token store and an output")
	}

	a := &App{
		adapter: serverAdapter,
		tokens:  tokens,
		out:     out,
		logger:  logger,
	}
	a.commands = map[string]command{
		"ping":           {usage: "ping", run: a.ping},
		"version":        {usage: "version", run: a.version},
		"signup":         {usage: "signup <username> <email> <password>", run: a.signup},
		"login":          {usage: "login <username> <password>", run: a.login},
		"logout":         {usage: "logout", run: a.logout},
		"hello":          {usage: "hello", run: a.hello},
		"tweet":          {usage: "tweet <content>", run: a.tweet},
		"tweets":         {usage: "tweets", run: a.listTweets},
		"get":            {usage: "get <tweet-id>", run: a.getTweet},
		"edit-tweet":     {usage: "edit-tweet <tweet-id> <content>", run: a.editTweet},
		"delete-tweet":   {usage: "delete-tweet <tweet-id>", run: a.deleteTweet},
		"edit-account":   {usage: "edit-account [-username name] [-email addr] [-password pass]", run: a.editAccount},
		"delete-account": {usage: "delete-account", run: a.deleteAccount},
	}

	return a, nil
}

// Run restores the saved token and executes a single command.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w\n%s", ErrNoCommand, a.Usage())
	}

	cmd, ok := a.commands[args[0]]
	if !ok {
		return fmt.Errorf("%w %q\n%s", ErrUnknownCommand, args[0], a.Usage())
	}

	token, err := a.tokens.Load()
	if err != nil {
		return err
	}
	a.adapter.SetToken(token)

	a.logger.Debug().Str("command", args[0]).Bool("has_token", token != "").Msg("running command")

	if err = cmd.run(ctx, args[1:]); err != nil {
		if errors.Is(err, ErrUsage) {
			return fmt.Errorf("%w: usage: %s", err, cmd.usage)
		}
		return err
	}

	return nil
}

// Usage lists every command with its arguments.
func (a *App) Usage() string {
	names := []string{
		"signup", "login", "logout", "hello",
		"tweet", "tweets", "get", "edit-tweet", "delete-tweet",
		"edit-account", "delete-account", "ping", "version",
	}

	var b strings.Builder
	b.WriteString("commands:\n")
	for _, name := range names {
		fmt.Fprintf(&b, "  %s\n", a.commands[name].usage)
	}

	return b.String()
}

func (a *App) ping(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	if err := a.adapter.Ping(ctx); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Server is up.")
	return nil
}

func (a *App) version(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	v, err := a.adapter.Version(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Server version: %s\n", v)
	return nil
}

func (a *App) signup(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return ErrUsage
	}

	req := models.RegisterRequest{Username: args[0], Email: args[1], Password: args[2]}
	if err := a.adapter.Register(ctx, req); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "User %s registered. Run \"login\" to get a token.\n", req.Username)
	return nil
}

func (a *App) login(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}

	resp, err := a.adapter.Login(ctx, models.LoginRequest{Username: args[0], Password: args[1]})
	if err != nil {
		return err
	}
	if err = a.tokens.Save(resp.Token); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s. Token expires at %s.\n", args[0], resp.ExpiresIn)
	return nil
}

func (a *App) logout(_ context.Context, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	if err := a.tokens.Clear(); err != nil {
		return err
	}
	a.adapter.SetToken("")

	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

func (a *App) hello(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	msg, err := a.adapter.Hello(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, msg)
	return nil
}

func (a *App) tweet(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrUsage
	}

	t, err := a.adapter.CreateTweet(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Tweet created.")
	a.printTweet(t)
	return nil
}

func (a *App) listTweets(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	tweets, err := a.adapter.ListTweets(ctx)
	if err != nil {
		return err
	}

	if len(tweets) == 0 {
		fmt.Fprintln(a.out, "No tweets yet.")
		return nil
	}
	for _, t := range tweets {
		a.printTweet(t)
	}

	return nil
}

func (a *App) getTweet(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := parseTweetID(args[0])
	if err != nil {
		return err
	}

	t, err := a.adapter.GetTweet(ctx, id)
	if err != nil {
		return err
	}

	a.printTweet(t)
	return nil
}

func (a *App) editTweet(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	id, err := parseTweetID(args[0])
	if err != nil {
		return err
	}

	t, err := a.adapter.UpdateTweet(ctx, id, strings.Join(args[1:], " "))
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Tweet updated.")
	a.printTweet(t)
	return nil
}

func (a *App) deleteTweet(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := parseTweetID(args[0])
	if err != nil {
		return err
	}

	if err = a.adapter.DeleteTweet(ctx, id); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Tweet deleted.")
	return nil
}

func (a *App) editAccount(ctx context.Context, args []string) error {
	var req models.UpdateUserRequest

	fs := flag.NewFlagSet("edit-account", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&req.Username, "username", "", "new username")
	fs.StringVar(&req.Email, "email", "", "new email")
	fs.StringVar(&req.Password, "password", "", "new password")
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 {
		return ErrUsage
	}
	if req.Username == "" && req.Email == "" && req.Password == "" {
		return ErrUsage
	}

	if err := a.adapter.EditAccount(ctx, req); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Account updated.")
	return nil
}

func (a *App) deleteAccount(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	if err := a.adapter.DeleteAccount(ctx); err != nil {
		return err
	}
	if err := a.tokens.Clear(); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Account deleted.")
	return nil
}

func (a *App) printTweet(t models.Tweet) {
	author := t.UserID.String()
	if t.Author != nil {
		author = "@" + t.Author.Username
	}

	fmt.Fprintf(a.out, "[%s] %s at %s", t.ID, author, t.CreatedAt.Format(time.RFC3339))
	if t.UpdatedAt != nil {
		fmt.Fprintf(a.out, " (edited %s)", t.UpdatedAt.Format(time.RFC3339))
	}
	fmt.Fprintf(a.out, "\n  %s\n", t.Content)
}

func parseTweetID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s", ErrInvalidTweetID, s)
	}

	return id, nil
}
