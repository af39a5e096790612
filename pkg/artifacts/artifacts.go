// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package artifacts loads compiled contract blueprints from hardhat and
// foundry build outputs.
package artifacts

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/urban-foraging/ufn/pkg/utils"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/spf13/afero"
)

const (
	artifactExt      = ".json"
	debugArtifactExt = ".dbg.json"
	buildInfoDir     = "build-info"
	placeholderMark  = "__"
)

var (
	ErrNotFound   = errors.New("contract artifact not found")
	ErrAmbiguous  = errors.New("contract name matches more than one artifact, use the fully qualified Source.sol:Name form")
	ErrUnlinked   = errors.New("bytecode has unlinked library references")
	ErrNoBytecode = errors.New("artifact has no bytecode (abstract contract or interface?)")
)

// AmbiguousError lists the fully qualified names of every artifact sharing
// the requested contract name
type AmbiguousError struct {
	Name      string
	Qualified []string
	Paths     []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("%s: %s found at %s", ErrAmbiguous, e.Name, strings.Join(e.Paths, ", "))
}

func (*AmbiguousError) Is(target error) bool {
	return target == ErrAmbiguous
}

// Blueprint is everything needed to create a contract instance
type Blueprint struct {
	Name             string
	SourceName       string
	Path             string
	ABI              abi.ABI
	Bytecode         []byte
	DeployedBytecode []byte
}

type Store struct {
	fs  afero.Fs
	dir string
}

func NewStore(fs afero.Fs, dir string) *Store {
	return &Store{fs: fs, dir: dir}
}

func (s *Store) Dir() string {
	return s.dir
}

// Load finds and parses the artifact of [name]. [name] is either a bare
// contract name or a qualified "contracts/Source.sol:Name".
func (s *Store) Load(name string) (*Blueprint, error) {
	sourceName, contractName := splitQualifiedName(name)
	if !utils.DirectoryExists(s.fs, s.dir) {
		return nil, fmt.Errorf("%w: %s (artifacts dir %s does not exist, compile the contracts first)", ErrNotFound, name, s.dir)
	}
	candidates, err := s.find(contractName)
	if err != nil {
		return nil, err
	}
	matches := []*rawArtifact{}
	for _, path := range candidates {
		raw, err := s.read(path)
		if err != nil {
			return nil, err
		}
		if sourceName != "" && !sameSource(raw.source, sourceName) {
			continue
		}
		matches = append(matches, raw)
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %s in %s", ErrNotFound, name, s.dir)
	case 1:
		return matches[0].blueprint(contractName)
	default:
		return nil, &AmbiguousError{
			Name:      name,
			Qualified: utils.Map(matches, func(raw *rawArtifact) string { return raw.source + ":" + contractName }),
			Paths:     utils.Map(matches, func(raw *rawArtifact) string { return raw.path }),
		}
	}
}

// ContractName strips the source part of a qualified "Source.sol:Name"
func ContractName(name string) string {
	_, contractName := splitQualifiedName(name)
	return contractName
}

func (s *Store) find(contractName string) ([]string, error) {
	candidates := []string{}
	err := afero.Walk(s.fs, s.dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if info.Name() == buildInfoDir {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(info.Name(), debugArtifactExt) {
			return nil
		}
		if info.Name() == contractName+artifactExt {
			candidates = append(candidates, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(candidates)
	return candidates, nil
}

type rawArtifact struct {
	ContractName     string          `json:"contractName"`
	SourceName       string          `json:"sourceName"`
	ABI              json.RawMessage `json:"abi"`
	Bytecode         json.RawMessage `json:"bytecode"`
	DeployedBytecode json.RawMessage `json:"deployedBytecode"`
	Metadata         *struct {
		Settings struct {
			CompilationTarget map[string]string `json:"compilationTarget"`
		} `json:"settings"`
	} `json:"metadata"`

	path   string
	source string
}

// read decodes only the envelope of an artifact, enough to filter it by
// source before its abi and bytecode are validated
func (s *Store) read(path string) (*rawArtifact, error) {
	b, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, err
	}
	raw := &rawArtifact{path: path}
	if err := json.Unmarshal(b, raw); err != nil {
		return nil, fmt.Errorf("invalid artifact %s: %w", path, err)
	}
	raw.source = raw.sourceName(path)
	return raw, nil
}

func (raw *rawArtifact) blueprint(contractName string) (*Blueprint, error) {
	path := raw.path
	if len(raw.ABI) == 0 {
		return nil, fmt.Errorf("invalid artifact %s: missing abi", path)
	}
	parsedABI, err := abi.JSON(bytes.NewReader(raw.ABI))
	if err != nil {
		return nil, fmt.Errorf("invalid abi in %s: %w", path, err)
	}
	bytecode, err := decodeBytecode(raw.Bytecode)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(bytecode) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoBytecode, path)
	}
	deployedBytecode, err := decodeBytecode(raw.DeployedBytecode)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	name := raw.ContractName
	if name == "" {
		name = contractName
	}
	return &Blueprint{
		Name:             name,
		SourceName:       raw.source,
		Path:             path,
		ABI:              parsedABI,
		Bytecode:         bytecode,
		DeployedBytecode: deployedBytecode,
	}, nil
}

func (raw *rawArtifact) sourceName(path string) string {
	if raw.SourceName != "" {
		return raw.SourceName
	}
	if raw.Metadata != nil {
		for source := range raw.Metadata.Settings.CompilationTarget {
			return source
		}
	}
	// <out>/<Source>.sol/<Name>.json
	return filepath.Base(filepath.Dir(path))
}

// decodeBytecode accepts the hardhat form ("0x...") and the foundry form
// ({"object": "0x..."})
func decodeBytecode(raw json.RawMessage) ([]byte, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var code string
	if err := json.Unmarshal(raw, &code); err != nil {
		var obj struct {
			Object string `json:"object"`
		}
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil, fmt.Errorf("unexpected bytecode format: %w", err)
		}
		code = obj.Object
	}
	code = strings.TrimPrefix(strings.TrimSpace(code), "0x")
	if strings.Contains(code, placeholderMark) {
		return nil, ErrUnlinked
	}
	decoded, err := hex.DecodeString(code)
	if err != nil {
		return nil, fmt.Errorf("invalid bytecode hex: %w", err)
	}
	return decoded, nil
}

func splitQualifiedName(name string) (string, string) {
	if i := strings.LastIndex(name, ":"); i != -1 {
		return name[:i], name[i+1:]
	}
	return "", name
}

// sameSource matches "contracts/X.sol" against "contracts/X.sol" or a bare "X.sol"
func sameSource(artifactSource, wanted string) bool {
	artifactSource = filepath.ToSlash(artifactSource)
	wanted = filepath.ToSlash(wanted)
	if artifactSource == wanted {
		return true
	}
	return !strings.Contains(wanted, "/") && filepath.Base(artifactSource) == wanted
}
