// Copyright 2016 The Godyna Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"gopkg.in/gcfg.v1"

	"github.com/cpmech/gosl/chk"
)

// ExampleSettings illustrates the settings (.cfg) file read by the driver
const ExampleSettings = `[run]

# Control data (metadata) file; JSON; relative to the settings file.
Meta = meta.json

# Cell stream dump file; JSON; relative to the settings file.
Dump = dump.json

# Directory which the finalized part meshes will be written to.
DirOut = /tmp/godyna

# Compact eroded (dead) cells away at finalize time. When false the dead
# cells stay in the output meshes and only the death flags are recorded.
RemoveDead = true

# Print progress messages on rank 0.
Verbose = true`

// Settings holds the run options of the driver
type Settings struct {
	Run struct {
		Meta       string // control data filename
		Dump       string // cell stream filename
		DirOut     string // output directory
		RemoveDead bool   // compact dead cells during finalize
		Verbose    bool   // show messages
	}
}

// ReadSettings reads run options from an INI (.cfg) file
func ReadSettings(fnpath string) (*Settings, error) {
	var o Settings
	if err := gcfg.ReadFileInto(&o, fnpath); err != nil {
		return nil, chk.Err("ReadSettings: cannot parse settings file %q:\n%v", fnpath, err)
	}
	if o.Run.Meta == "" || o.Run.Dump == "" {
		return nil, chk.Err("settings file %q must set both Meta and Dump in the [run] section", fnpath)
	}
	if o.Run.DirOut == "" {
		o.Run.DirOut = "/tmp/godyna"
	}
	return &o, nil
}
