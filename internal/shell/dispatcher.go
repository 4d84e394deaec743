package shell

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"papertrail-ai/internal/constant"
	"papertrail-ai/internal/entity"
	"papertrail-ai/internal/pkg/logger"
	"papertrail-ai/internal/service"
	"papertrail-ai/pkg/extractor"
)

type Extractor interface {
	Extract(ctx context.Context, files []extractor.File) extractor.Result
}

// Dispatcher applies commands one at a time. It is the only writer of session state,
// so the session store underneath needs no locking of its own.
type Dispatcher struct {
	mu        sync.Mutex
	appTitle  string
	sessions  service.IChatSessionService
	extractor Extractor
	answers   service.IAnswerService
	logger    logger.ILogger
	flash     []Notice
}

func NewDispatcher(
	appTitle string,
	sessions service.IChatSessionService,
	extractor Extractor,
	answers service.IAnswerService,
	logger logger.ILogger,
) *Dispatcher {
	return &Dispatcher{
		appTitle:  appTitle,
		sessions:  sessions,
		extractor: extractor,
		answers:   answers,
		logger:    logger,
	}
}

// Dispatch applies cmd and returns the resulting view. The notices it produced are also
// kept for the next Render.
func (d *Dispatcher) Dispatch(ctx context.Context, cmd Command) View {
	d.mu.Lock()
	defer d.mu.Unlock()

	notices := d.apply(ctx, cmd)
	d.flash = append(d.flash, notices...)

	d.logger.Debug("SHELL", "Command applied", map[string]interface{}{
		"command": cmd.commandName(),
		"notices": len(notices),
		"current": d.sessions.Current().Name,
	})

	return d.view(notices)
}

// Render returns the current view and consumes pending notices.
func (d *Dispatcher) Render() View {
	d.mu.Lock()
	defer d.mu.Unlock()

	notices := d.flash
	d.flash = nil
	return d.view(notices)
}

func (d *Dispatcher) SessionCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return len(d.sessions.Names())
}

func (d *Dispatcher) apply(ctx context.Context, cmd Command) []Notice {
	switch c := cmd.(type) {
	case RenameCommand:
		return d.rename(c.Name)
	case SwitchCommand:
		if err := d.sessions.Select(c.Name); err != nil {
			d.logger.Debug("SHELL", "Switch ignored", map[string]interface{}{"error": err.Error()})
		}
		return nil
	case DeleteCommand:
		d.sessions.Delete()
		return nil
	case NewCommand:
		d.sessions.Create()
		return nil
	case SubmitCommand:
		return d.submit(ctx, c.Files)
	case AskCommand:
		return d.ask(ctx, c.Question)
	default:
		d.logger.Warn("SHELL", "Unknown command", map[string]interface{}{"type": fmt.Sprintf("%T", cmd)})
		return nil
	}
}

func (d *Dispatcher) rename(name string) []Notice {
	err := d.sessions.Rename(name)
	if errors.Is(err, service.ErrSessionNameTaken) {
		return []Notice{{Level: constant.NoticeLevelWarning, Text: constant.NoticeNameTaken}}
	}
	if err != nil {
		d.logger.Error("SHELL", "Rename failed", map[string]interface{}{"error": err.Error()})
		return []Notice{{Level: constant.NoticeLevelError, Text: err.Error()}}
	}
	return nil
}

func (d *Dispatcher) submit(ctx context.Context, files []extractor.File) []Notice {
	result := d.extractor.Extract(ctx, files)
	d.sessions.ReplaceDocument(result.Text)

	notices := make([]Notice, 0, len(result.Failures)+1)
	for _, failure := range result.Failures {
		notices = append(notices, Notice{Level: constant.NoticeLevelError, Text: failure.Error()})
	}
	if result.Empty() {
		notices = append(notices, Notice{Level: constant.NoticeLevelWarning, Text: constant.NoticeNoTextExtracted})
	} else {
		notices = append(notices, Notice{Level: constant.NoticeLevelSuccess, Text: constant.NoticeTextExtracted})
	}
	return notices
}

func (d *Dispatcher) ask(ctx context.Context, question string) []Notice {
	session := d.sessions.Current()
	if !session.HasDocument() {
		return []Notice{{Level: constant.NoticeLevelInfo, Text: constant.NoticeUploadHint}}
	}
	if strings.TrimSpace(question) == "" {
		return nil
	}

	d.sessions.AppendMessage(entity.ChatMessageRoleUser, question)
	answer := d.answers.Answer(ctx, session.CombinedText, question)
	d.sessions.AppendMessage(entity.ChatMessageRoleAssistant, answer.Message())
	return nil
}

func (d *Dispatcher) view(notices []Notice) View {
	session := d.sessions.Current()

	transcript := make([]entity.ChatMessage, len(session.ChatHistory))
	copy(transcript, session.ChatHistory)

	v := View{
		AppTitle:    d.appTitle,
		Title:       session.Name,
		SessionId:   session.Id,
		Sessions:    d.sessions.Names(),
		Current:     session.Name,
		Transcript:  transcript,
		ChatEnabled: session.HasDocument(),
		Notices:     notices,
		Busy:        constant.NoticeGeneratingAnswer,
	}
	if !v.ChatEnabled {
		v.Hint = constant.NoticeUploadHint
	}
	return v
}
