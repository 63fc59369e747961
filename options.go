package mdexport

const defaultApplication = "go-mdexport"

type exportConfig struct {
	limits      Limits
	application string
	creator     string
	compression Compression
}

func newExportConfig(opts []ExportOption) exportConfig {
	cfg := exportConfig{
		limits:      defaultLimits(),
		application: defaultApplication,
		creator:     defaultApplication,
		compression: CompNone,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()
	return cfg
}

type ExportOption func(*exportConfig)

func WithLimits(l Limits) ExportOption {
	return func(c *exportConfig) { c.limits = l }
}

// WithApplication sets the application name recorded in docProps/app.xml.
func WithApplication(name string) ExportOption {
	return func(c *exportConfig) {
		if name != "" {
			c.application = name
		}
	}
}

// WithCreator sets the dc:creator and lastModifiedBy values recorded in
// docProps/core.xml. The default is the application name.
func WithCreator(name string) ExportOption {
	return func(c *exportConfig) {
		if name != "" {
			c.creator = name
		}
	}
}

// WithCompression selects the codec used by ExportMarkdown.
// ExportDocx ignores it: docx archive entries are always stored.
func WithCompression(comp Compression) ExportOption {
	return func(c *exportConfig) { c.compression = comp }
}
