// Package hclconfig implements config.Loader for HCL settings files.
//
// A settings file looks like:
//
//	sheet {
//	  rows         = 10000
//	  cols         = 10000
//	  cell_width   = 12
//	  cycle_policy = "error"
//	}
//
//	log {
//	  level = "debug"
//	  file  = "${env.HOME}/.gridsheet.log"
//	}
//
//	ui {
//	  resize_debounce = "100ms"
//	}
//
// Every block and attribute is optional. Expressions may read environment
// variables through the `env` object.
package hclconfig
