// completion.go generates shell completion scripts for ndctl, adapted
// from the teacher's flag-registry-driven generator and repointed at
// ndctl's own (much smaller) flag set and subcommands.
package cli

import (
	"fmt"
	"io"
	"strings"
)

// FlagCompletion describes a single ndctl flag for shell completion
// generation: adding a flag only requires appending to flagRegistry.
type FlagCompletion struct {
	Long   string   // long flag name without "--"
	Help   string   // description text
	Values []string // suggested completion values, nil if freeform
}

// flagRegistry lists ndctl's flags, global and bigint-subcommand ones
// alike (subcommand operands are positional and not completed here).
var flagRegistry = []FlagCompletion{
	{Long: "help", Help: "Show help message"},
	{Long: "version", Help: "Show version information"},
	{Long: "base", Help: "Output base for bigint results", Values: []string{"decimal", "hex", "binary"}},
	{Long: "capacity", Help: "BigInt word capacity preset", Values: []string{"4", "8", "16", "32", "64"}},
	{Long: "completion", Help: "Generate a shell completion script", Values: []string{"bash", "zsh", "fish", "powershell"}},
}

// subcommands lists ndctl's top-level verbs, completed as the first
// positional argument.
var subcommands = []string{"bigint", "slice", "tui"}

// GenerateCompletion writes a shell completion script for shell to out.
func GenerateCompletion(out io.Writer, shell string) error {
	switch shell {
	case "bash":
		return generateBashCompletion(out)
	case "zsh":
		return generateZshCompletion(out)
	case "fish":
		return generateFishCompletion(out)
	case "powershell", "ps":
		return generatePowerShellCompletion(out)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh, fish, powershell)", shell)
	}
}

func allLongFlags() []string {
	out := make([]string, len(flagRegistry))
	for i, f := range flagRegistry {
		out[i] = "--" + f.Long
	}
	return out
}

func generateBashCompletion(out io.Writer) error {
	var cases strings.Builder
	for _, f := range flagRegistry {
		if len(f.Values) == 0 {
			continue
		}
		fmt.Fprintf(&cases, "        --%s)\n            COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n            return 0\n            ;;\n", f.Long, strings.Join(f.Values, " "))
	}

	script := fmt.Sprintf(`# Bash completion script for ndctl
_ndctl_completions() {
    local cur prev opts subcommands
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    opts="%s"
    subcommands="%s"

    case "${prev}" in
%s    esac

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "${subcommands}" -- "${cur}") )
        return 0
    fi
    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
}
complete -F _ndctl_completions ndctl
`, strings.Join(allLongFlags(), " "), strings.Join(subcommands, " "), cases.String())

	_, err := fmt.Fprint(out, script)
	return err
}

func generateZshCompletion(out io.Writer) error {
	var args strings.Builder
	for _, f := range flagRegistry {
		if len(f.Values) > 0 {
			fmt.Fprintf(&args, "        '--%s[%s]:value:(%s)' \\\n", f.Long, f.Help, strings.Join(f.Values, " "))
		} else {
			fmt.Fprintf(&args, "        '--%s[%s]' \\\n", f.Long, f.Help)
		}
	}
	script := fmt.Sprintf(`#compdef ndctl

_ndctl() {
    local -a subcommands
    subcommands=(%s)

    _arguments -s \
%s        '1: :->subcommand' \
        '*::arg:->args'

    case $state in
        subcommand)
            _describe 'command' subcommands
            ;;
    esac
}

_ndctl
`, strings.Join(subcommands, " "), args.String())
	_, err := fmt.Fprint(out, script)
	return err
}

func generateFishCompletion(out io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# Fish completion script for ndctl\n")
	for _, sc := range subcommands {
		fmt.Fprintf(&b, "complete -c ndctl -n '__fish_use_subcommand' -a '%s'\n", sc)
	}
	for _, f := range flagRegistry {
		if len(f.Values) > 0 {
			fmt.Fprintf(&b, "complete -c ndctl -l %s -d '%s' -a '%s'\n", f.Long, f.Help, strings.Join(f.Values, " "))
		} else {
			fmt.Fprintf(&b, "complete -c ndctl -l %s -d '%s'\n", f.Long, f.Help)
		}
	}
	_, err := fmt.Fprint(out, b.String())
	return err
}

func generatePowerShellCompletion(out io.Writer) error {
	script := fmt.Sprintf(`# PowerShell completion script for ndctl
Register-ArgumentCompleter -Native -CommandName ndctl -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)
    $subcommands = @(%s)
    $flags = @(%s)
    ($subcommands + $flags) | Where-Object { $_ -like "$wordToComplete*" } |
        ForEach-Object { [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_) }
}
`, quotedList(subcommands), quotedList(allLongFlags()))
	_, err := fmt.Fprint(out, script)
	return err
}

func quotedList(items []string) string {
	quoted := make([]string, len(items))
	for i, it := range items {
		quoted[i] = fmt.Sprintf("'%s'", it)
	}
	return strings.Join(quoted, ", ")
}
