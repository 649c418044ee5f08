package assets

import (
	"github.com/hollis/imscript/bind"
	"github.com/hollis/imscript/script"
)

// RegisterCallbacks binds the asset store operations into a registry under
// their script-visible names. Path arguments are validated against the
// temporary namespace before any side effect.
func (s *Service) RegisterCallbacks(r *bind.Registry) error {
	type namedCallback struct {
		name string
		fn   bind.CallbackFunc
	}
	callbacks := []namedCallback{
		{"makeAsset", func(args []script.Value) ([]script.Value, error) {
			path, err := pathArg("makeAsset", args)
			if err != nil {
				return nil, err
			}
			var data script.Value
			if len(args) > 1 {
				data = args[1]
			}
			out, err := s.MakeAsset(path, data)
			if err != nil {
				return nil, err
			}
			return []script.Value{script.String(out)}, nil
		}},
		{"makeAssetFromBytes", func(args []script.Value) ([]script.Value, error) {
			path, data, err := pathBytesArgs("makeAssetFromBytes", args)
			if err != nil {
				return nil, err
			}
			out, err := s.MakeAssetFromBytes(path, data)
			if err != nil {
				return nil, err
			}
			return []script.Value{script.String(out)}, nil
		}},
		{"makeImageFromBytes", func(args []script.Value) ([]script.Value, error) {
			path, data, err := pathBytesArgs("makeImageFromBytes", args)
			if err != nil {
				return nil, err
			}
			out, err := s.MakeImageFromBytes(path, data)
			if err != nil {
				return nil, err
			}
			return []script.Value{script.String(out)}, nil
		}},
		{"getTemporaryAsset", func(args []script.Value) ([]script.Value, error) {
			path, err := pathArg("getTemporaryAsset", args)
			if err != nil {
				return nil, err
			}
			data, ok := s.TemporaryAsset(path)
			if !ok {
				return []script.Value{script.Nil}, nil
			}
			return []script.Value{script.String(string(data))}, nil
		}},
		{"getTemporaryImage", func(args []script.Value) ([]script.Value, error) {
			path, err := pathArg("getTemporaryImage", args)
			if err != nil {
				return nil, err
			}
			img, ok := s.TemporaryImage(path)
			if !ok {
				return []script.Value{script.Nil}, nil
			}
			return []script.Value{script.FromImage(img)}, nil
		}},
		{"hasTemporaryAsset", func(args []script.Value) ([]script.Value, error) {
			path, err := pathArg("hasTemporaryAsset", args)
			if err != nil {
				return nil, err
			}
			return []script.Value{script.Bool(s.HasTemporaryAsset(path))}, nil
		}},
		{"removeTemporaryAsset", func(args []script.Value) ([]script.Value, error) {
			path, err := pathArg("removeTemporaryAsset", args)
			if err != nil {
				return nil, err
			}
			return nil, s.RemoveTemporaryAsset(path)
		}},
		{"clearTemporaryAssets", func(args []script.Value) ([]script.Value, error) {
			s.ClearTemporaryAssets()
			return nil, nil
		}},
	}
	for _, cb := range callbacks {
		if err := r.RegisterCallback(cb.name, cb.fn); err != nil {
			return err
		}
	}
	return nil
}

func pathArg(fn string, args []script.Value) (string, error) {
	if len(args) < 1 || args[0].IsNil() {
		return "", &bind.ArityError{Fn: fn, Param: "path", Index: 0}
	}
	path, ok := args[0].TryString()
	if !ok {
		return "", &bind.TypeError{Fn: fn, Param: "path", Index: 0, Want: "string", Got: args[0].Kind()}
	}
	return path, nil
}

func pathBytesArgs(fn string, args []script.Value) (string, []byte, error) {
	path, err := pathArg(fn, args)
	if err != nil {
		return "", nil, err
	}
	if len(args) < 2 || args[1].IsNil() {
		return "", nil, &bind.ArityError{Fn: fn, Param: "bytes", Index: 1}
	}
	data, ok := args[1].TryString()
	if !ok {
		return "", nil, &bind.TypeError{Fn: fn, Param: "bytes", Index: 1, Want: "string", Got: args[1].Kind()}
	}
	return path, []byte(data), nil
}
