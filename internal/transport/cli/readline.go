package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/sandevgo/footix/internal/config"
	"github.com/sandevgo/footix/internal/core"
	"github.com/sandevgo/footix/pkg/conv"
	"github.com/sandevgo/footix/pkg/log"
)

const defaultChannelID = "cli-local"

type ReadLine struct {
	listener core.MessageListener
	rl       *readline.Instance
	sender   string
}

func NewReadLine(listener core.MessageListener, cfg *config.AppConfig) (*ReadLine, error) {
	if err := os.MkdirAll(cfg.RuntimePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "you> ",
		HistoryFile:     filepath.Join(cfg.RuntimePath, "input_history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}

	return &ReadLine{
		listener: listener,
		rl:       rl,
		sender:   localUser(),
	}, nil
}

func localUser() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return "local"
}

func (r *ReadLine) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	logger.Info().Msg("chat started. Type 'exit' to quit, '/help' for commands.")

	out := core.SenderFunc(func(ctx context.Context, channelID, text string) error {
		_, err := fmt.Fprintf(r.rl.Stdout(), "footix> %s\n", strings.TrimSpace(conv.MarkdownToPlain([]byte(text))))
		return err
	})

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := r.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				if len(line) == 0 {
					return nil // Exit on Ctrl+C
				}
				continue
			} else if err == io.EOF {
				return nil
			}
			return err
		}

		if strings.TrimSpace(line) == "exit" {
			return nil
		}

		// empty lines are answered too: the bot nudges a silent user
		r.listener.OnMessage(ctx, core.Utterance{
			Text:      line,
			ChannelID: defaultChannelID,
			SenderID:  r.sender,
		}, out)
	}
}

func (r *ReadLine) Shutdown(ctx context.Context) error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}
