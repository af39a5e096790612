// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package contract

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

func removeSurroundingParenthesis(s string) (string, error) {
	s = strings.TrimSpace(s)
	if len(s) > 0 {
		if string(s[0]) != "(" || string(s[len(s)-1]) != ")" {
			return "", fmt.Errorf("expected esp %q to be surrounded by parenthesis", s)
		}
		s = s[1 : len(s)-1]
	}
	return s, nil
}

func getWords(s string) []string {
	words := []string{}
	word := ""
	insideParenthesis := false
	for _, rune := range s {
		c := string(rune)
		if insideParenthesis {
			if c == ")" {
				words = append(words, word)
				word = ""
				insideParenthesis = false
			} else {
				word += c
			}
			continue
		}
		if c == " " || c == "," || c == "(" {
			if word != "" {
				words = append(words, word)
				word = ""
			}
		}
		if c == " " || c == "," {
			continue
		}
		if c == "(" {
			insideParenthesis = true
			continue
		}
		word += c
	}
	if word != "" {
		words = append(words, word)
	}
	return words
}

func getMap(
	types []string,
	params ...interface{},
) []map[string]interface{} {
	r := []map[string]interface{}{}
	for i, t := range types {
		spaceIndex := strings.Index(t, " ")
		commaIndex := strings.Index(t, ",")
		m := map[string]interface{}{}
		if spaceIndex != -1 || commaIndex != -1 {
			// tuple
			var tupleParam []interface{}
			if i < len(params) {
				tupleParam = []interface{}{params[i]}
			}
			m["components"] = getMap(getWords(t), tupleParam...)
			m["internaltype"] = "tuple"
			m["type"] = "tuple"
			m["name"] = ""
		} else {
			name := ""
			if len(params) == 1 {
				rt := reflect.TypeOf(params[0])
				if rt != nil && rt.Kind() == reflect.Struct && rt.NumField() == len(types) {
					name = rt.Field(i).Name
				}
			}
			m["internaltype"] = t
			m["type"] = t
			m["name"] = name
		}
		r = append(r, m)
	}
	return r
}

// ParseMethodEsp converts a method spec like "balanceOf(address)->(uint256)"
// into the method name and a json abi describing it
func ParseMethodEsp(
	methodEsp string,
	paid bool,
	view bool,
	params ...interface{},
) (string, string, error) {
	index := strings.Index(methodEsp, "(")
	if index == -1 {
		return methodEsp, "", nil
	}
	methodName := methodEsp[:index]
	methodTypes := methodEsp[index:]
	methodInputs := ""
	methodOutputs := ""
	index = strings.Index(methodTypes, "->")
	if index == -1 {
		methodInputs = methodTypes
	} else {
		methodInputs = methodTypes[:index]
		methodOutputs = methodTypes[index+2:]
	}
	var err error
	methodInputs, err = removeSurroundingParenthesis(methodInputs)
	if err != nil {
		return "", "", err
	}
	methodOutputs, err = removeSurroundingParenthesis(methodOutputs)
	if err != nil {
		return "", "", err
	}
	inputTypes := getWords(methodInputs)
	outputTypes := getWords(methodOutputs)
	inputs := getMap(inputTypes, params...)
	outputs := getMap(outputTypes)
	abiMap := []map[string]interface{}{
		{
			"inputs":          inputs,
			"outputs":         outputs,
			"name":            methodName,
			"statemutability": "nonpayable",
			"type":            "function",
		},
	}
	if paid {
		abiMap[0]["statemutability"] = "payable"
	}
	if view {
		abiMap[0]["statemutability"] = "view"
	}
	abiBytes, err := json.MarshalIndent(abiMap, "", "  ")
	if err != nil {
		return "", "", err
	}
	return methodName, string(abiBytes), nil
}

// MethodABI parses [methodEsp] into a single method abi
func MethodABI(
	methodEsp string,
	view bool,
	params ...interface{},
) (string, abi.ABI, error) {
	methodName, methodABI, err := ParseMethodEsp(methodEsp, false, view, params...)
	if err != nil {
		return "", abi.ABI{}, err
	}
	if methodABI == "" {
		return "", abi.ABI{}, fmt.Errorf("method spec %q has no parameter list", methodEsp)
	}
	parsed, err := abi.JSON(strings.NewReader(methodABI))
	if err != nil {
		return "", abi.ABI{}, fmt.Errorf("invalid method spec %q: %w", methodEsp, err)
	}
	return methodName, parsed, nil
}

// CallToMethod executes a read only call of [methodEsp] on [contractAddress]
func CallToMethod(
	ctx context.Context,
	caller bind.ContractCaller,
	contractAddress common.Address,
	methodEsp string,
	params ...interface{},
) ([]interface{}, error) {
	methodName, parsed, err := MethodABI(methodEsp, true, params...)
	if err != nil {
		return nil, err
	}
	contract := bind.NewBoundContract(contractAddress, parsed, caller, nil, nil)
	var out []interface{}
	err = contract.Call(&bind.CallOpts{Context: ctx}, &out, methodName, params...)
	if err != nil {
		return nil, err
	}
	return out, nil
}
