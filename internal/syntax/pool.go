package syntax

import (
	"sync"

	sitter "github.com/alexaandru/go-tree-sitter-bare"
)

// parserPool reuses *sitter.Parser instances for a single language so
// that spawning a parse task doesn't allocate and configure a new
// parser on every keystroke.
type parserPool struct {
	mu       sync.Mutex
	lang     *sitter.Language
	free     []*sitter.Parser
}

func newParserPool(lang *sitter.Language) *parserPool {
	return &parserPool{lang: lang}
}

func (p *parserPool) get() *sitter.Parser {
	p.mu.Lock()
	if n := len(p.free); n > 0 {
		parser := p.free[n-1]
		p.free = p.free[:n-1]
		p.mu.Unlock()
		return parser
	}
	p.mu.Unlock()

	parser := sitter.NewParser()
	_ = parser.SetLanguage(p.lang)
	return parser
}

// put returns a parser to the pool. The parser must not be used again
// by the caller: ownership transfers back to the pool. The tree the
// parser just produced is not tied to it and stays usable.
func (p *parserPool) put(parser *sitter.Parser) {
	p.mu.Lock()
	p.free = append(p.free, parser)
	p.mu.Unlock()
}
