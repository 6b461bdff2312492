// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlbst/avl"
	"github.com/bitmark-inc/avlbst/bst"
	"github.com/bitmark-inc/avlbst/fault"
)

// processor - apply commands to a single tree
type processor struct {
	tree *avl.Tree
	out  io.Writer
	log  *logger.L
}

type commandFunc func(p *processor, arguments []string) error

type command struct {
	argc int
	run  commandFunc
	help string
}

// commands and their argument counts
var commands = map[string]command{
	"insert": {2, (*processor).insert, "insert KEY VALUE  - add or update a key"},
	"remove": {1, (*processor).remove, "remove KEY        - delete a key if present"},
	"find":   {1, (*processor).find, "find KEY          - show the value and index of a key"},
	"print":  {0, (*processor).print, "print             - display the tree shape"},
	"list":   {0, (*processor).list, "list              - display all keys in order"},
	"check":  {0, (*processor).check, "check             - verify order and balance"},
	"count":  {0, (*processor).count, "count             - display the number of keys"},
	"paths":  {0, (*processor).paths, "paths             - test if all leaves are at one depth"},
}

// display order for help
var commandOrder = []string{"insert", "remove", "find", "print", "list", "check", "count", "paths"}

func newProcessor(tree *avl.Tree, out io.Writer, log *logger.L) *processor {
	return &processor{
		tree: tree,
		out:  out,
		log:  log,
	}
}

// run command line commands left to right, stopping at the first error
func (p *processor) run(arguments []string) error {
	for len(arguments) > 0 {
		name := arguments[0]
		arguments = arguments[1:]

		cmd, ok := commands[name]
		if !ok {
			return fmt.Errorf("%w: %q", fault.ErrInvalidCommand, name)
		}
		if len(arguments) < cmd.argc {
			return fmt.Errorf("%w: %s needs %d", fault.ErrMissingArgument, name, cmd.argc)
		}
		if err := p.apply(name, cmd, arguments[:cmd.argc]); nil != err {
			return err
		}
		arguments = arguments[cmd.argc:]
	}
	return nil
}

// run script operations in order, stopping at the first error
func (p *processor) runScript(operations []operation) error {
	for i, op := range operations {
		cmd, ok := commands[op.Op]
		if !ok {
			return fmt.Errorf("%w: step: %d  op: %q", fault.ErrInvalidOperation, i, op.Op)
		}
		arguments := op.arguments(cmd.argc)
		if len(arguments) < cmd.argc {
			return fmt.Errorf("%w: step: %d  op: %s needs %d", fault.ErrMissingArgument, i, op.Op, cmd.argc)
		}
		if err := p.apply(op.Op, cmd, arguments); nil != err {
			return err
		}
	}
	return nil
}

func (p *processor) apply(name string, cmd command, arguments []string) error {
	p.log.Debugf("command: %s  arguments: %q", name, arguments)
	return cmd.run(p, arguments)
}

func (p *processor) insert(arguments []string) error {
	key := stringItem(arguments[0])
	if p.tree.Insert(key, arguments[1]) {
		fmt.Fprintf(p.out, "insert: %q added\n", key)
	} else {
		fmt.Fprintf(p.out, "insert: %q updated\n", key)
	}
	return nil
}

func (p *processor) remove(arguments []string) error {
	key := stringItem(arguments[0])
	if value, removed := p.tree.Remove(key); removed {
		fmt.Fprintf(p.out, "remove: %q → %q\n", key, value)
	} else {
		fmt.Fprintf(p.out, "remove: %q absent\n", key)
	}
	return nil
}

// an absent key is reported but is not an error
func (p *processor) find(arguments []string) error {
	key := stringItem(arguments[0])
	node, index := p.tree.Search(key)
	if nil == node {
		p.log.Debugf("find: %q  error: %s", key, fault.ErrKeyNotFound)
		fmt.Fprintf(p.out, "find: %q error: %s\n", key, fault.ErrKeyNotFound)
		return nil
	}
	fmt.Fprintf(p.out, "find: %q → %q [%d]\n", key, node.Value(), index)
	return nil
}

func (p *processor) print(arguments []string) error {
	if p.tree.IsEmpty() {
		fmt.Fprintf(p.out, "print: empty tree\n")
		return nil
	}
	depth := p.tree.Fprint(p.out, true)
	p.log.Debugf("print: depth: %d", depth)
	return nil
}

func (p *processor) list(arguments []string) error {
	i := 0
	for node := p.tree.First(); nil != node; node = node.Next() {
		fmt.Fprintf(p.out, "%d: %q → %q\n", i, node.Key(), node.Value())
		i += 1
	}
	return nil
}

func (p *processor) check(arguments []string) error {
	if err := p.tree.CheckBalance(); nil != err {
		fault.Criticalf("tree check failed: %s", err)
		return err
	}
	fmt.Fprintf(p.out, "check: ok  count: %d  height: %d\n", p.tree.Count(), p.tree.Root().Height())
	return nil
}

func (p *processor) count(arguments []string) error {
	fmt.Fprintf(p.out, "count: %d\n", p.tree.Count())
	return nil
}

func (p *processor) paths(arguments []string) error {
	if bst.EqualPaths(p.tree.Root()) {
		fmt.Fprintf(p.out, "paths: equal\n")
	} else {
		fmt.Fprintf(p.out, "paths: unequal\n")
	}
	return nil
}

// print the list of supported commands
func commandHelp(w io.Writer) {
	fmt.Fprintf(w, "supported commands:\n\n")
	for _, name := range commandOrder {
		fmt.Fprintf(w, "  %s\n", commands[name].help)
	}
	fmt.Fprintf(w, "\n")
}
