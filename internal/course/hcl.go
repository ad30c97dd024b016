package course

import (
	"fmt"

	"github.com/KirkDiggler/banker/internal/models"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// fileConfig is the layout of a course catalog file:
//
//	course "Home Nine" {
//	  id = 20
//	  hole {
//	    number   = 1
//	    par      = 4
//	    yards    = 360
//	    handicap = 5
//	  }
//	}
type fileConfig struct {
	Courses []courseBlock `hcl:"course,block"`
}

type courseBlock struct {
	Name  string      `hcl:"name,label"`
	ID    int         `hcl:"id"`
	Holes []holeBlock `hcl:"hole,block"`
}

type holeBlock struct {
	Number   int `hcl:"number"`
	Par      int `hcl:"par"`
	Yards    int `hcl:"yards,optional"`
	Handicap int `hcl:"handicap"`
}

// LoadFile reads courses from an HCL catalog file
func LoadFile(filename string) ([]*models.Course, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	return decode(file.Body)
}

// Parse reads courses from HCL source
func Parse(src []byte, filename string) ([]*models.Course, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}

	return decode(file.Body)
}

func decode(body hcl.Body) ([]*models.Course, error) {
	var cfg fileConfig
	if diags := gohcl.DecodeBody(body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	courses := make([]*models.Course, 0, len(cfg.Courses))
	for _, block := range cfg.Courses {
		course := &models.Course{
			ID:    block.ID,
			Name:  block.Name,
			Holes: make([]*models.Hole, 0, len(block.Holes)),
		}
		for _, hb := range block.Holes {
			course.Holes = append(course.Holes, &models.Hole{
				Number:   hb.Number,
				Par:      hb.Par,
				Yards:    hb.Yards,
				Handicap: hb.Handicap,
			})
		}
		courses = append(courses, course)
	}
	return courses, nil
}
