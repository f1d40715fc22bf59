package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdAdd    CommandType = "add"
	CmdRemove CommandType = "remove"
	CmdList   CommandType = "list"
	CmdNext   CommandType = "proximo"
	CmdHelp   CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}

	switch parts[0] {
	case "add", "adicionar":
		cmd.Type = CmdAdd
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "remove", "rm", "remover":
		cmd.Type = CmdRemove
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "list", "ls", "listar":
		cmd.Type = CmdList
	case "proximo", "próximo", "next":
		cmd.Type = CmdNext
	case "help", "ajuda":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("comando desconhecido: %s", parts[0])
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Comandos disponíveis:*

*Eventos:*
• ` + "`/agenda add YYYY-MM-DD [HH:MM] nome do evento`" + ` - Agenda um evento (ex: /agenda add 2026-12-25 10:00 Natal)
• ` + "`/agenda remove ID`" + ` - Remove um evento agendado
• ` + "`/agenda list`" + ` - Lista os próximos eventos
• ` + "`/agenda proximo`" + ` - Mostra o próximo evento e quanto falta

*Ajuda:*
• ` + "`/agenda help`" + ` - Mostra esta mensagem`
}
