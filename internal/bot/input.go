package bot

import "strings"

// ParseInput разбивает строку на команду и аргументы. Команда приводится к нижнему регистру
func ParseInput(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}
