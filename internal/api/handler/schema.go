package handler

import (
	"github.com/buhgalterija/backoffice/internal/core/domain"
	"github.com/buhgalterija/backoffice/internal/core/service"
)

type errorBody struct {
	Error string `json:"error"`
}

type sessionView struct {
	User         domain.UserProfile   `json:"user"`
	Capabilities domain.CapabilitySet `json:"capabilities"`
	Navigation   []domain.NavItem     `json:"navigation"`
}

func newSessionView(sess domain.Session) sessionView {
	caps := service.Capabilities(sess.Profile.Role)
	return sessionView{
		User:         sess.Profile,
		Capabilities: caps,
		Navigation:   service.Navigation(caps),
	}
}

type loginView struct {
	State   string       `json:"state"`
	Session *sessionView `json:"session,omitempty"`
}

type registerView struct {
	Registered bool         `json:"registered"`
	Session    *sessionView `json:"session,omitempty"`
}

type listView[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

func newListView[T any](items []T) listView[T] {
	if items == nil {
		items = []T{}
	}
	return listView[T]{Items: items, Total: len(items)}
}

type settingsSection struct {
	Key string `json:"key"`
}

type settingsView struct {
	Sections []settingsSection `json:"sections"`
}

var settingsSections = []settingsSection{
	{Key: "taxPeriods"},
	{Key: "defaultDeadlines"},
	{Key: "notificationTemplates"},
	{Key: "security"},
}
