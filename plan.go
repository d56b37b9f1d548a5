package planfind

import (
	"io"

	"github.com/pkg/errors"
)

// PlanMeta is the version header of a Terraform plan JSON document.
type PlanMeta struct {
	FormatVersion    string `json:"format_version"`
	TerraformVersion string `json:"terraform_version"`
}

// ReadPlan parses a Terraform plan JSON document and decodes its version
// header. The full tree is returned for searching. Header fields missing
// from the document are left empty; a root that is not an object fails
// with ErrInvalidInput.
func ReadPlan(r io.Reader) (*Node, *PlanMeta, error) {
	n, err := Parse(r)
	if err != nil {
		return nil, nil, errors.Wrap(err, "parse plan")
	}
	if n.Kind() != Object {
		return nil, nil, errors.Wrapf(ErrInvalidInput,
			"plan root is %s, want object", n.Kind())
	}
	meta := &PlanMeta{}
	if err := n.Decode(meta); err != nil {
		return nil, nil, errors.Wrap(err, "decode plan header")
	}
	return n, meta, nil
}
