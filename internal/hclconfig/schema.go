package hclconfig

// fileRoot decodes all top-level blocks of a settings file. Unknown blocks
// and attributes are rejected by the decoder.
type fileRoot struct {
	Sheet *sheetBlock `hcl:"sheet,block"`
	Log   *logBlock   `hcl:"log,block"`
	UI    *uiBlock    `hcl:"ui,block"`
}

type sheetBlock struct {
	Rows        *int    `hcl:"rows,optional"`
	Cols        *int    `hcl:"cols,optional"`
	CellWidth   *int    `hcl:"cell_width,optional"`
	CellHeight  *int    `hcl:"cell_height,optional"`
	Overscan    *int    `hcl:"overscan,optional"`
	CyclePolicy *string `hcl:"cycle_policy,optional"`
}

type logBlock struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
	File   *string `hcl:"file,optional"`
}

type uiBlock struct {
	ResizeDebounce *string `hcl:"resize_debounce,optional"`
}
