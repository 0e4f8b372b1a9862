package command

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

const defaultKnowledgePage = 20

type Catalog interface {
	Questions() []string
}

type KnowledgeCommand struct {
	catalog   Catalog
	formatter *ResponseFormatter
}

func NewKnowledgeCommand(catalog Catalog) *KnowledgeCommand {
	return &KnowledgeCommand{
		catalog:   catalog,
		formatter: NewResponseFormatter(),
	}
}

func (c *KnowledgeCommand) Name() string {
	return "kb"
}

func (c *KnowledgeCommand) Description() string {
	return "List the questions I know, optionally filtered"
}

func (c *KnowledgeCommand) Execute(ctx context.Context, channelID string, args []string) (string, error) {
	limit := defaultKnowledgePage
	var filter []string
	for _, a := range args {
		if n, err := strconv.Atoi(a); err == nil && n > 0 {
			limit = n
			continue
		}
		filter = append(filter, a)
	}
	needle := strings.ToLower(strings.Join(filter, " "))

	var matched []string
	for _, q := range c.catalog.Questions() {
		if needle == "" || strings.Contains(strings.ToLower(q), needle) {
			matched = append(matched, q)
		}
	}

	if len(matched) == 0 {
		return c.formatter.Combine(
			c.formatter.Info("Knowledge"),
			"Nothing found.\n",
			c.formatter.Usage("/kb [filter] [limit]"),
		), nil
	}

	title := fmt.Sprintf("Knowledge (%d)", len(matched))
	if len(matched) > limit {
		title = fmt.Sprintf("Knowledge (%d of %d)", limit, len(matched))
		matched = matched[:limit]
	}

	return c.formatter.Combine(
		c.formatter.Info(title),
		c.formatter.List(matched),
	), nil
}
