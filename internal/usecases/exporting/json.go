package exporting

import (
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/campaign-analytics-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// JSONVersion é a versão do envelope de exportação
const JSONVersion = "1.0"

type jsonMetadata struct {
	GeneratedAt time.Time            `json:"generatedAt"`
	Format      domain.ExportFormat  `json:"format"`
	Options     domain.ExportOptions `json:"options"`
	Version     string               `json:"version"`
}

type jsonEnvelope struct {
	Metadata jsonMetadata `json:"metadata"`
	Data     any          `json:"data"`
}

func toJSON(p *payload, opts domain.ExportOptions, exportFormat domain.ExportFormat, generatedAt time.Time) ([]byte, error) {
	envelope := jsonEnvelope{
		Metadata: jsonMetadata{
			GeneratedAt: generatedAt,
			Format:      exportFormat,
			Options:     opts,
			Version:     JSONVersion,
		},
		Data: p.data,
	}

	var (
		content []byte
		err     error
	)
	if opts.PrettyPrint {
		content, err = json.MarshalIndent(envelope, "", "  ")
	} else {
		content, err = json.Marshal(envelope)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerialization, err)
	}

	return content, nil
}
