package flounder

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/flounder/internal/levelgen"
)

// Console errors. A rejected command never changes session state.
var (
	ErrUnknownCommand = errors.New("flounder: unknown command")
	ErrBadArgument    = errors.New("flounder: bad argument")
)

// HelpText lists the console commands.
const HelpText = "Commands: level.set <n>, heal, help"

// Exec runs one console command line and returns its reply.
//
//	level.set <n> | level <n>   jump to level n (1..12) and close the console
//	heal                        restore full health
//	help                        list commands
func (s *Session) Exec(line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", fmt.Errorf("%w: empty line", ErrUnknownCommand)
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]
	s.logger.Info("console", "cmd", cmd, "args", args)

	switch cmd {
	case "level.set", "level":
		if len(args) != 1 {
			return "", fmt.Errorf("%w: usage: %s <n>", ErrBadArgument, cmd)
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return "", fmt.Errorf("%w: %q is not a level number", ErrBadArgument, args[0])
		}
		if err := s.SetLevel(n); err != nil {
			return "", fmt.Errorf("%w: %d (1-%d)", err, n, levelgen.TotalLevels)
		}
		s.consoleOpen = false
		return fmt.Sprintf("Loaded level %d", n), nil

	case "heal":
		if len(args) != 0 {
			return "", fmt.Errorf("%w: heal takes no arguments", ErrBadArgument)
		}
		s.Heal()
		return fmt.Sprintf("Health restored to %d", s.player.Health), nil

	case "help":
		return HelpText, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
}
