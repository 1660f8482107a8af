// Package scraper compiles and runs Lua source scripts.
package scraper

import (
	"bytes"
	"crypto/sha256"
	"sync"

	"github.com/youngoor/youngoor/filesystem"
	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"
)

// protos caches compiled scripts by content hash, so an edited script is recompiled.
var protos sync.Map

// PreCompileAndLoad runs the script at scriptPath in L, compiling it only once per content.
func PreCompileAndLoad(L *lua.LState, scriptPath string) error {
	content, err := filesystem.API().ReadFile(scriptPath)
	if err != nil {
		return err
	}

	proto, err := compile(content, scriptPath)
	if err != nil {
		return err
	}

	L.Push(L.NewFunctionFromProto(proto))
	return L.PCall(0, lua.MultRet, nil)
}

func compile(content []byte, name string) (*lua.FunctionProto, error) {
	sum := sha256.Sum256(content)
	if cached, ok := protos.Load(sum); ok {
		return cached.(*lua.FunctionProto), nil
	}

	chunk, err := parse.Parse(bytes.NewReader(content), name)
	if err != nil {
		return nil, err
	}

	proto, err := lua.Compile(chunk, name)
	if err != nil {
		return nil, err
	}

	protos.Store(sum, proto)
	return proto, nil
}
