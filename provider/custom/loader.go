package custom

import (
	"fmt"

	libs "github.com/metafates/mangal-lua-libs"
	"github.com/youngoor/youngoor/constant"
	"github.com/youngoor/youngoor/internal/scraper"
	"github.com/youngoor/youngoor/source"
	"github.com/youngoor/youngoor/util"
	lua "github.com/yuin/gopher-lua"
)

// IDfromName generates the identifier of a Lua source from its file stem.
func IDfromName(name string) string {
	return name + " custom"
}

// LoadSource runs a Lua script and checks that it defines the functions of a source.
func LoadSource(path string) (source.Source, error) {
	state := lua.NewState()
	libs.Preload(state)
	registerTLSClient(state)

	if err := scraper.PreCompileAndLoad(state, path); err != nil {
		state.Close()
		return nil, err
	}

	name := util.FileStem(path)

	required := []string{
		constant.ValidFn,
		constant.EpisodesFn,
		constant.StreamFn,
	}

	for _, fn := range required {
		if state.GetGlobal(fn).Type() != lua.LTFunction {
			state.Close()
			return nil, fmt.Errorf("function %s is required but not defined in %s", fn, name)
		}
	}

	src, err := newLuaSource(name, state)
	if err != nil {
		state.Close()
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return src, nil
}
