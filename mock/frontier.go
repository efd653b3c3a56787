package mock

import "github.com/isabelleatkins/crawler"

var _ crawler.Frontier = (*Frontier)(nil)

// Frontier is a mock implementation of crawler.Frontier.
type Frontier struct {
	PushFn func(url string)
	PopFn  func() (string, bool)
	LenFn  func() int
}

func (f *Frontier) Push(url string) {
	f.PushFn(url)
}

func (f *Frontier) Pop() (string, bool) {
	return f.PopFn()
}

func (f *Frontier) Len() int {
	return f.LenFn()
}
