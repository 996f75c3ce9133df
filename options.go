package wikicorpus

const (
	// DefaultArticleCapacity bounds a single <text> region.
	DefaultArticleCapacity = 5 * 1024 * 1024
	// DefaultReadBufferSize is how much of the dump is read at once.
	DefaultReadBufferSize = 256 * 1024
	// DefaultProgressBytes is the byte interval between progress reports.
	DefaultProgressBytes = 64 * 1024 * 1024
	// DefaultProgressLines is the line interval between progress reports.
	DefaultProgressLines = 1000000
)

// Options tune the phases.  Zero fields take their defaults.
type Options struct {
	ArticleCapacity  int
	ReadBufferSize   int
	ProgressBytes    int64
	ProgressLines    int64
	StripApostrophes bool
	MinWords         int
	MinLineLength    int
	Observer         Observer
}

func (o Options) withDefaults() Options {
	if o.ArticleCapacity <= 0 {
		o.ArticleCapacity = DefaultArticleCapacity
	}
	if o.ReadBufferSize <= 0 {
		o.ReadBufferSize = DefaultReadBufferSize
	}
	if o.ProgressBytes <= 0 {
		o.ProgressBytes = DefaultProgressBytes
	}
	if o.ProgressLines <= 0 {
		o.ProgressLines = DefaultProgressLines
	}
	if o.MinWords <= 0 {
		o.MinWords = DefaultMinWords
	}
	if o.MinLineLength <= 0 {
		o.MinLineLength = DefaultMinLineLength
	}
	if o.Observer == nil {
		o.Observer = NopObserver{}
	}
	return o
}
