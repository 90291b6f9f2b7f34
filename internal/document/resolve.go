package document

import "path"

// ResolutionPolicy derives companion document names from a primary document
// name. The conventional layout places a requirements record and a design
// record next to the task document, so the policy is two fixed file names
// resolved into the primary's containing directory.
type ResolutionPolicy struct {
	// RequirementsName is the file name of the requirements companion.
	RequirementsName string

	// DesignName is the file name of the design companion.
	DesignName string
}

// DefaultResolutionPolicy returns the conventional companion names.
func DefaultResolutionPolicy() ResolutionPolicy {
	return ResolutionPolicy{
		RequirementsName: "requirements.md",
		DesignName:       "design.md",
	}
}

// Siblings returns the candidate requirements and design document names for
// the given primary document name.
func (p ResolutionPolicy) Siblings(primary string) (requirements, design string) {
	dir := path.Dir(primary)
	return path.Join(dir, p.RequirementsName), path.Join(dir, p.DesignName)
}

// Set is the full input to one validation run: the primary document plus any
// companions that could be resolved. A nil companion means the document was
// absent, which is never fatal — cross-document rules degrade to a Warning.
type Set struct {
	Primary      Document
	Requirements *Document
	Design       *Document
}

// LoadSet loads the primary document and attempts both companions. A missing
// primary fails the load; missing companions leave the corresponding field
// nil.
func LoadSet(src Source, policy ResolutionPolicy, primary string) (Set, error) {
	doc, err := src.Load(primary)
	if err != nil {
		return Set{}, err
	}

	set := Set{Primary: doc}

	reqName, designName := policy.Siblings(primary)
	if req, err := src.Load(reqName); err == nil {
		set.Requirements = &req
	}
	if design, err := src.Load(designName); err == nil {
		set.Design = &design
	}

	return set, nil
}
