// Package custom provides a bridge between the Go core and Lua source scripts.
package custom

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/youngoor/youngoor/constant"
	"github.com/youngoor/youngoor/log"
	"github.com/youngoor/youngoor/source"
	lua "github.com/yuin/gopher-lua"
)

type luaSource struct {
	name string

	// mu serializes access to state, which is not goroutine-safe.
	mu    sync.Mutex
	state *lua.LState

	token     mo.Option[string]
	dimension []source.Dimension
}

func newLuaSource(name string, state *lua.LState) (*luaSource, error) {
	s := &luaSource{
		name:      name,
		state:     state,
		token:     mo.None[string](),
		dimension: defaultDimension(),
	}

	if state.GetGlobal(constant.DimensionFn).Type() == lua.LTFunction {
		val, err := s.call(context.Background(), constant.DimensionFn, lua.LTTable)
		if err != nil {
			return nil, err
		}
		dims, err := dimensionFromTable(val.(*lua.LTable))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", constant.DimensionFn, err)
		}
		s.dimension = dims
	}

	return s, nil
}

func (s *luaSource) Name() string {
	return s.name
}

func (s *luaSource) ID() string {
	return IDfromName(s.name)
}

func (s *luaSource) Valid(u *url.URL) bool {
	if u == nil {
		return false
	}
	val, err := s.call(context.Background(), constant.ValidFn, lua.LTBool, lua.LString(u.String()))
	if err != nil {
		log.Warnf("%s: %s", s.name, err)
		return false
	}
	return lua.LVAsBool(val)
}

func (s *luaSource) Episodes(ctx context.Context, u *url.URL) ([]*source.Episode, error) {
	if u == nil {
		return nil, source.InvalidURL("")
	}
	val, err := s.call(ctx, constant.EpisodesFn, lua.LTTable, lua.LString(u.String()))
	if err != nil {
		return nil, source.RequestError(err.Error())
	}

	var (
		episodes []*source.Episode
		errs     []error
	)

	val.(*lua.LTable).ForEach(func(k, v lua.LValue) {
		if k.Type() != lua.LTNumber || v.Type() != lua.LTTable {
			return
		}

		episode, err := episodeFromTable(v.(*lua.LTable), len(episodes)+1)
		if err != nil {
			errs = append(errs, err)
			return
		}

		episode.Source = s
		episodes = append(episodes, episode)
	})

	if len(errs) > 0 {
		return nil, source.RequestError(errs[0].Error())
	}

	return episodes, nil
}

func (s *luaSource) Stream(ctx context.Context, episode *source.Episode, quality source.Quality) (*source.Media, error) {
	dim, ok := lo.Find(s.dimension, func(d source.Dimension) bool {
		return d.Tier == quality.Tier
	})
	if !ok {
		return nil, source.NoSuchResource(fmt.Sprintf("%s does not serve %s", s.name, quality.Tier))
	}

	token, authenticated := s.token.Get()
	if dim.Auth && !authenticated {
		return nil, source.NeedsAuthentication(fmt.Sprintf("%s %s", s.name, quality.Tier))
	}

	tokenArg := lua.LValue(lua.LNil)
	if authenticated {
		tokenArg = lua.LString(token)
	}

	val, err := s.call(ctx, constant.StreamFn, lua.LTTable,
		lua.LString(episode.Key),
		lua.LString(quality.Tier.String()),
		lua.LString(quality.Container.String()),
		tokenArg,
	)
	if err != nil {
		return nil, source.RequestError(err.Error())
	}

	media, err := mediaFromTable(val.(*lua.LTable), quality)
	if err != nil {
		return nil, err
	}

	media.Title = episode.String()
	media.Index = episode.Index
	media.Cover = episode.Cover.OrEmpty()
	media.Description = episode.Description.OrEmpty()
	return media, nil
}

func (s *luaSource) Dimension() []source.Dimension {
	return append([]source.Dimension(nil), s.dimension...)
}

func (s *luaSource) SetToken(token string) {
	if token == "" {
		s.token = mo.None[string]()
		return
	}
	s.token = mo.Some(token)
}

func (s *luaSource) Token() mo.Option[string] {
	return s.token
}

// call executes a global Lua function in protected mode.
func (s *luaSource) call(ctx context.Context, fn string, retType lua.LValueType, args ...lua.LValue) (lua.LValue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	luaFn := s.state.GetGlobal(fn)
	if luaFn.Type() != lua.LTFunction {
		return nil, fmt.Errorf("function %s is not defined", fn)
	}

	s.state.SetContext(ctx)
	defer s.state.RemoveContext()

	err := s.state.CallByParam(lua.P{
		Fn:      luaFn,
		NRet:    1,
		Protect: true,
	}, args...)
	if err != nil {
		return nil, err
	}

	retval := s.state.Get(-1)
	s.state.Pop(1)

	if retval.Type() != retType {
		return nil, fmt.Errorf("%s returned %s, expected %s", fn, retval.Type(), retType)
	}

	return retval, nil
}

// defaultDimension is used by scripts that do not define one: every tier, none locked.
func defaultDimension() []source.Dimension {
	return lo.Map(source.Tiers(), func(t source.Tier, i int) source.Dimension {
		return source.Dimension{Tier: t, Code: i + 1, Label: t.String()}
	})
}

var _ source.Source = (*luaSource)(nil)
