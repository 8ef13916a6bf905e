package user

import (
	"github.com/next-trace/scg-mediator/contract/port"
	"github.com/next-trace/scg-mediator/mediator"
)

// Register is the composition root for the user module: it binds every
// handler with its concrete port dependencies onto the bus. Call once during
// startup, before any dispatch.
func Register(b *mediator.Bus, repo Repository, notifier port.Notifier) error {
	if err := mediator.BindCommand[Create](b, CreateHandler{Repo: repo, Pub: b}); err != nil {
		return err
	}

	if err := mediator.BindCommand[Rename](b, RenameHandler{Repo: repo, Pub: b}); err != nil {
		return err
	}

	if err := mediator.BindCommand[Delete](b, DeleteHandler{Repo: repo, Pub: b}); err != nil {
		return err
	}

	if err := mediator.BindQuery[Get, View](b, GetHandler{Repo: repo}); err != nil {
		return err
	}

	if err := mediator.BindQuery[List, []Snapshot](b, ListHandler{Repo: repo}); err != nil {
		return err
	}

	return mediator.BindEvent[Created](b, WelcomeMailer{Notifier: notifier})
}
