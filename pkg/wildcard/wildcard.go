// Package wildcard matches names against shell style wildcard patterns.
//
// Patterns support literal characters, "?" (any one character), "*" (any
// characters except "/"), "**" (any characters including "/"), and bracket
// classes "[seq]" and "[!seq]". A wildcard always consumes at least one
// character.
//
// Compiled patterns are kept in an LRU cache owned by a Service. The package
// level functions use a default Service with DefaultCacheCapacity entries.
package wildcard

// Service answers match queries through its compiled-pattern cache. The zero
// value uses the package default cache.
type Service struct {
	cache *Cache
}

func NewService(capacity int) (*Service, error) {
	cache, err := NewCache(capacity)
	if err != nil {
		return nil, err
	}
	return &Service{cache: cache}, nil
}

func NewServiceWithCache(cache *Cache) *Service {
	return &Service{cache: cache}
}

func (s *Service) Cache() *Cache {
	if s.cache == nil {
		return defaultService.cache
	}
	return s.cache
}

// Match reports whether name matches pattern, case sensitive.
func (s *Service) Match(pattern, name string, acceptPrefix bool) (bool, error) {
	return s.match(pattern, name, true, acceptPrefix)
}

// MatchCI reports whether name matches pattern, case insensitive.
func (s *Service) MatchCI(pattern, name string, acceptPrefix bool) (bool, error) {
	return s.match(pattern, name, false, acceptPrefix)
}

// MatchAny reports whether name matches at least one of patterns. An empty
// pattern list matches every name.
func (s *Service) MatchAny(patterns []string, name string, acceptPrefix bool) (bool, error) {
	return s.matchAny(patterns, name, true, acceptPrefix)
}

func (s *Service) MatchAnyCI(patterns []string, name string, acceptPrefix bool) (bool, error) {
	return s.matchAny(patterns, name, false, acceptPrefix)
}

// NewMatcherFunc returns a predicate matching names against any of patterns.
// All patterns are compiled up front, so an invalid one is reported here and
// the predicate itself cannot fail.
func (s *Service) NewMatcherFunc(patterns []string, caseSensitive, acceptPrefix bool) (func(name string) bool, error) {
	if len(patterns) == 0 {
		return func(string) bool { return true }, nil
	}

	matchers := make([]*Matcher, 0, len(patterns))
	for _, pattern := range patterns {
		m, err := s.Cache().Get(pattern, caseSensitive, acceptPrefix)
		if err != nil {
			return nil, err
		}
		matchers = append(matchers, m)
	}

	return func(name string) bool {
		for _, m := range matchers {
			if m.Match(name) {
				return true
			}
		}
		return false
	}, nil
}

func (s *Service) match(pattern, name string, caseSensitive, acceptPrefix bool) (bool, error) {
	m, err := s.Cache().Get(pattern, caseSensitive, acceptPrefix)
	if err != nil {
		return false, err
	}
	return m.Match(name), nil
}

func (s *Service) matchAny(patterns []string, name string, caseSensitive, acceptPrefix bool) (bool, error) {
	if len(patterns) == 0 {
		return true, nil
	}
	for _, pattern := range patterns {
		ok, err := s.match(pattern, name, caseSensitive, acceptPrefix)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

var defaultService = mustNewService(DefaultCacheCapacity)

func mustNewService(capacity int) *Service {
	s, err := NewService(capacity)
	if err != nil {
		panic(err)
	}
	return s
}

func Default() *Service {
	return defaultService
}

func Match(pattern, name string, acceptPrefix bool) (bool, error) {
	return defaultService.Match(pattern, name, acceptPrefix)
}

func MatchCI(pattern, name string, acceptPrefix bool) (bool, error) {
	return defaultService.MatchCI(pattern, name, acceptPrefix)
}

func MatchAny(patterns []string, name string, acceptPrefix bool) (bool, error) {
	return defaultService.MatchAny(patterns, name, acceptPrefix)
}

func MatchAnyCI(patterns []string, name string, acceptPrefix bool) (bool, error) {
	return defaultService.MatchAnyCI(patterns, name, acceptPrefix)
}

func NewMatcherFunc(patterns []string, caseSensitive, acceptPrefix bool) (func(name string) bool, error) {
	return defaultService.NewMatcherFunc(patterns, caseSensitive, acceptPrefix)
}
