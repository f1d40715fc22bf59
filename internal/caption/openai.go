// Package caption generates short celebratory texts for announcements.
// Generation is strictly best-effort: any failure, timeout, or missing
// credential yields an empty string and the caller falls back to a
// deterministic message.
package caption

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/mferrari/agendabot/internal/domain/contract"
)

const generateTimeout = 60 * time.Second

type Generator struct {
	client  openai.Client
	model   string
	enabled bool
}

func New(apiKey, model string) *Generator {
	if apiKey == "" {
		log.Println("OpenAI API key not configured, captions will use fallback messages")
		return &Generator{}
	}

	if model == "" {
		model = "gpt-4o-mini"
	}

	return &Generator{
		client:  openai.NewClient(option.WithAPIKey(apiKey)),
		model:   model,
		enabled: true,
	}
}

// Generate returns a caption for the given context, or "" when generation
// is disabled or fails. It never returns an error.
func (g *Generator) Generate(ctx context.Context, cc contract.CaptionContext) string {
	if !g.enabled {
		return ""
	}

	ctx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: g.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt(cc)),
		},
		MaxCompletionTokens: openai.Int(300),
	})
	if err != nil {
		log.Printf("Caption generation failed: %v", err)
		return ""
	}

	if len(resp.Choices) == 0 {
		log.Println("Caption generation returned no choices")
		return ""
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content)
}

const systemPrompt = "Você é um assistente animado que escreve mensagens curtas " +
	"e calorosas em português brasileiro para um grupo de amigos. Responda " +
	"somente com a mensagem, sem aspas e sem explicações. Use no máximo três " +
	"frases e pode usar emojis."

func userPrompt(cc contract.CaptionContext) string {
	switch cc.Kind {
	case contract.CaptionGreeting:
		return fmt.Sprintf(
			"Escreva uma mensagem de bom dia para o grupo. Hoje é %s. "+
				"Deseje um ótimo dia de forma criativa.",
			cc.Weekday,
		)
	default:
		names := strings.Join(cc.Names, " e ")
		if cc.Days > 0 {
			return fmt.Sprintf(
				"Faltam %d dias para: %s. Escreva uma mensagem empolgada de "+
					"contagem regressiva para o grupo.",
				cc.Days, names,
			)
		}
		return fmt.Sprintf(
			"Chegou o momento de: %s (faltavam %d horas e %d minutos). "+
				"Escreva uma mensagem de comemoração para o grupo.",
			names, cc.Hours, cc.Minutes,
		)
	}
}
