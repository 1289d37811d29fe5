package email

import (
	"context"
	"html/template"

	"internship_backend/internal/logger"
)

// Notifier sends the auth side-channel notifications. Delivery is
// best-effort: implementations must never surface a failure to the
// request that triggered it.
type Notifier interface {
	SendWelcome(ctx context.Context, to, name, role string)
	SendLoginAlert(ctx context.Context, to, name string)
}

// AsyncNotifier dispatches each notification on its own goroutine after
// the primary write has committed, logging failures and moving on.
type AsyncNotifier struct {
	provider Provider
	fromName string
}

func NewAsyncNotifier(provider Provider, fromName string) *AsyncNotifier {
	return &AsyncNotifier{provider: provider, fromName: fromName}
}

func (n *AsyncNotifier) SendWelcome(ctx context.Context, to, name, role string) {
	n.dispatch(ctx, to, "Welcome to the Internship Portal!", welcomeTemplate, templateData{
		Name:     displayName(name, to),
		Role:     role,
		FromName: n.fromName,
	})
}

func (n *AsyncNotifier) SendLoginAlert(ctx context.Context, to, name string) {
	n.dispatch(ctx, to, "Login Alert - Internship Portal", loginAlertTemplate, templateData{
		Name:     displayName(name, to),
		FromName: n.fromName,
	})
}

func (n *AsyncNotifier) dispatch(ctx context.Context, to, subject string, tpl *template.Template, data templateData) {
	// Capture the request-scoped log fields before the request finishes.
	log := logger.FromContext(ctx)

	body, err := render(tpl, data)
	if err != nil {
		log.Error("failed to render notification", "template", tpl.Name(), "error", err.Error())
		return
	}

	go func() {
		if err := n.provider.Send(to, subject, body); err != nil {
			log.Error("failed to send notification",
				"template", tpl.Name(),
				"to", to,
				"error", err.Error(),
			)
		}
	}()
}

func displayName(name, email string) string {
	if name != "" {
		return name
	}
	return email
}
