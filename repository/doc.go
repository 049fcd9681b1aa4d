// Package repository loads config fragments for the composition engine.
//
// A [SearchPath] tries an ordered list of [Source] implementations and
// serves the first fragment found, parsing the YAML document into the
// engine's model on every load. [NewCaching] wraps any repository with a
// per-path cache that hands out fresh clones, collapsing concurrent
// loads of the same path into one.
//
// # Fragment format
//
// A fragment is a YAML mapping. The top-level "defaults" key, when
// present, must hold a sequence; each entry is either a scalar or a
// single-pair mapping:
//
//	defaults:
//	  - _self_              # position of this fragment's own values
//	  - base                # compose the ungrouped config "base"
//	  - db: mysql           # compose group "db" with choice "mysql"
//	  - db@backup: mysql    # same choice into package "backup"
//	  - db@src:dst: mysql   # rename package src to dst
//	  - db: null            # delete the group's choice
//	  - ~db                 # same, scalar form
//	  - ~db=mysql           # delete only if the choice is mysql
//	  - group: name
//	    optional: true      # tolerate a missing config
//
// Everything else in the mapping is the fragment body and passes through
// untouched.
package repository
