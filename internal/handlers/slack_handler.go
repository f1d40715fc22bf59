package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/mferrari/agendabot/internal/clock"
	"github.com/mferrari/agendabot/internal/domain"
	"github.com/mferrari/agendabot/internal/domain/service"
	slackcmd "github.com/mferrari/agendabot/internal/slack"
	"github.com/slack-go/slack"
)

type SlackHandler struct {
	services      *service.Instance
	localTime     *clock.LocalTime
	clk           clock.Clock
	signingSecret string
}

func NewSlackHandler(services *service.Instance, localTime *clock.LocalTime, clk clock.Clock, signingSecret string) *SlackHandler {
	return &SlackHandler{
		services:      services,
		localTime:     localTime,
		clk:           clk,
		signingSecret: signingSecret,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Verify Slack signature
	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	// Parse command
	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// Parse our command
	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	response := h.handleCommand(cmd)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) handleCommand(cmd *slackcmd.Command) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdAdd:
		return h.handleAdd(cmd)
	case slackcmd.CmdRemove:
		return h.handleRemove(cmd)
	case slackcmd.CmdList:
		return h.handleList()
	case slackcmd.CmdNext:
		return h.handleNext()
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Comando não reconhecido")
	}
}

var timeArgPattern = regexp.MustCompile(`^\d{1,2}:\d{2}$`)

func (h *SlackHandler) handleAdd(cmd *slackcmd.Command) *slack.Msg {
	if len(cmd.Args) < 2 {
		return h.createErrorResponse("Use: `/agenda add YYYY-MM-DD [HH:MM] nome do evento`")
	}

	dateStr := cmd.Args[0]
	rest := cmd.Args[1:]

	timeStr := ""
	if timeArgPattern.MatchString(rest[0]) {
		timeStr = rest[0]
		rest = rest[1:]
	}
	name := strings.Join(rest, " ")

	event, err := h.services.Event.CreateEvent(name, dateStr, timeStr)
	switch err {
	case nil:
	case domain.ErrEmptyName:
		return h.createErrorResponse("O evento precisa de um nome")
	case domain.ErrUnparseableDate:
		return h.createErrorResponse("Data inválida. Use o formato YYYY-MM-DD")
	case domain.ErrPastDate:
		return h.createErrorResponse("A data do evento deve estar no futuro")
	default:
		return h.createErrorResponse("Erro ao agendar evento")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text: fmt.Sprintf("✅ Evento *%s* agendado para %s (id %d)",
			event.Name, h.localTime.Format(event.Date, "02/01/2006 15:04"), event.ID),
	}
}

func (h *SlackHandler) handleRemove(cmd *slackcmd.Command) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Use: `/agenda remove ID`")
	}

	id, err := strconv.ParseInt(cmd.Args[0], 10, 64)
	if err != nil {
		return h.createErrorResponse("ID inválido")
	}

	if err := h.services.Event.DeleteEvent(id); err != nil {
		return h.createErrorResponse("Erro ao remover evento")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ Evento %d removido.", id),
	}
}

func (h *SlackHandler) handleList() *slack.Msg {
	events, err := h.services.Event.ListUpcoming()
	if err != nil {
		return h.createErrorResponse("Erro ao listar eventos")
	}

	if len(events) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "Nenhum evento agendado. Use `/agenda add` para criar um.",
		}
	}

	var list strings.Builder
	list.WriteString("*Próximos eventos:*\n")
	for _, event := range events {
		list.WriteString(fmt.Sprintf("• [%d] %s - %s\n",
			event.ID, event.Name, h.localTime.Format(event.Date, "02/01/2006 15:04")))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         list.String(),
	}
}

func (h *SlackHandler) handleNext() *slack.Msg {
	events, err := h.services.Event.ListUpcoming()
	if err != nil {
		return h.createErrorResponse("Erro ao consultar eventos")
	}

	group := service.NearestGroup(events)
	if len(group) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "Nenhum evento agendado por enquanto.",
		}
	}

	names := make([]string, len(group))
	for i, event := range group {
		names[i] = event.Name
	}

	parts := service.Countdown(group[0].Date, h.clk.Now())
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text: fmt.Sprintf("⏳ Faltam %d dias, %d horas e %d minutos para *%s* (%s)",
			parts.Days, parts.Hours, parts.Minutes,
			service.ComposeNames(names, "e"),
			h.localTime.Format(group[0].Date, "02/01/2006 15:04")),
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

func (h *SlackHandler) createErrorResponse(text string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         "❌ " + text,
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.createErrorResponse(message))
}
