package domain

import (
	"fmt"
	"strings"
)

const initScriptTemplate = `setopt promptsubst
export VIRTUAL_ENV_DISABLE_PROMPT=1

typeset -g __river_dreams_bin=%s
typeset -gi __river_dreams_exit_code=0 __river_dreams_jobs=0

__river_dreams_precmd() {
  __river_dreams_exit_code=$?
  __river_dreams_jobs=${(%%):-%%j}
}

autoload -Uz add-zsh-hook
add-zsh-hook precmd __river_dreams_precmd

PROMPT='$("$__river_dreams_bin" prompt left --shell zsh --exit-code "$__river_dreams_exit_code" --columns "$COLUMNS")'
RPROMPT='$("$__river_dreams_bin" prompt right --shell zsh --jobs "$__river_dreams_jobs")'
`

// InitScript returns the zsh code that hooks binary into the prompt.
func InitScript(binary string) string {
	if binary == "" {
		binary = "river-dreams"
	}

	return fmt.Sprintf(initScriptTemplate, shellQuote(binary))
}

func shellQuote(value string) string {
	return "'" + strings.ReplaceAll(value, "'", `'\''`) + "'"
}
