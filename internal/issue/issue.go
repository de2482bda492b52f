// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

type Id int

const (
	LexiconNotFoundId Id = iota + 1
	LexiconReadFailedId
	BoardLettersMissingId
	ConfigLoadFailedId
	InvalidConfigValueId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

// Render renders the issue's Markdown for the terminal. stylePath is a
// glamour style name ("dark", "light", "notty", ...).
func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 {
		extraMd += "\n\n## See also:\n"
		for _, link := range i.docLinks {
			extraMd += "- <" + string(link) + ">\n"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	lexiconNotFoundIssue = &Issue{
		id: LexiconNotFoundId,
		mdMsg: `
# No word list found!
letterpress needs a newline-delimited dictionary to look words up in.

## Where the word list is looked up (first match wins):
1. The ` + "`--dictionary`" + ` flag
2. The ` + "`LETTERPRESS_DICTIONARY`" + ` environment variable (also read from ` + "`.env`" + `)
3. ` + "`dictionary`" + ` in your config file
4. ` + "`wordsEn.txt`" + ` in the current directory

## Things you can try:
- Point at a word list explicitly:
~~~
$ letterpress --dictionary /usr/share/dict/words cat
~~~
- Persist the location in your config file:
~~~cue
dictionary: "/usr/share/dict/words"
~~~`,
		docLinks: []HttpLink{"https://github.com/dwyl/english-words"},
	}

	lexiconReadFailedIssue = &Issue{
		id: LexiconReadFailedId,
		mdMsg: `
# Could not read the word list!
The dictionary file was found but reading it failed part way through.

## Common causes:
- The path points at a directory or a special file
- Permission denied
- A single line is longer than the scanner limit (the file is probably not a word list)

## Things you can try:
- Check the file with ` + "`head`" + ` and ` + "`wc -l`" + `
- Run with ` + "`--verbose`" + ` to see the full error chain`,
	}

	boardLettersMissingIssue = &Issue{
		id: BoardLettersMissingId,
		mdMsg: `
# No letters supplied!
Tell letterpress which letters are on the board.

## Usage:
~~~
$ letterpress <board-letters> [preferred-letters]
~~~

## Examples:
~~~
$ letterpress qwertyuiopasdfghjklzxcvbn
$ letterpress qwertyuiopasdfghjklzxcvbn xyz
~~~

Preferred letters only change the order of results: among words of the same
length, words that use more of them come first.`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!
Could not load the letterpress configuration file.

## Configuration file locations:
- Linux: ~/.config/letterpress/config.cue
- macOS: ~/Library/Application Support/letterpress/config.cue
- Windows: %APPDATA%\letterpress\config.cue

## Things you can try:
- Create a default configuration:
~~~
$ letterpress config init
~~~
- Check the configuration syntax
- Remove the config file to use defaults

## Example configuration:
~~~cue
dictionary: "/usr/share/dict/words"
min_length: 2
limit: 20
ui: {
  color_scheme: "auto"
  verbose: false
  details: true
}
~~~`,
	}

	invalidConfigValueIssue = &Issue{
		id: InvalidConfigValueId,
		mdMsg: `
# Invalid configuration value!
A configuration value is out of range.

## Valid values:
- **min_length**: 1 or more
- **limit**: 0 (show everything) or more
- **ui.color_scheme**: "auto", "dark" or "light"
- **dictionary**: a non-blank path`,
	}

	issues = map[Id]*Issue{
		lexiconNotFoundIssue.Id():     lexiconNotFoundIssue,
		lexiconReadFailedIssue.Id():   lexiconReadFailedIssue,
		boardLettersMissingIssue.Id(): boardLettersMissingIssue,
		configLoadFailedIssue.Id():    configLoadFailedIssue,
		invalidConfigValueIssue.Id():  invalidConfigValueIssue,
	}
)

// Values returns every catalog entry ordered by ID.
func Values() []*Issue {
	out := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		out = append(out, i)
	}
	slices.SortFunc(out, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return out
}

// Get returns the catalog entry for id, or nil.
func Get(id Id) *Issue {
	return issues[id]
}
