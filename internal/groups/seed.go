package groups

import (
	"context"

	pkgerrors "github.com/angelmondragon/groupdrive-backend/pkg/errors"
	"go.uber.org/multierr"
)

const (
	sampleCity       = "All India"
	sampleMaxMembers = 50
)

// SeedResult reports what SeedSamples touched.
type SeedResult struct {
	Message string     `json:"message"`
	Created int        `json:"created"`
	Skipped int        `json:"skipped"`
	Groups  []GroupDTO `json:"groups"`
}

var sampleGroups = []CreateGroupDTO{
	{Brand: "Tata", CarModel: "Tata Motors", CurrentMembers: 32,
		ImageURL: "https://customer-assets.emergentagent.com/job_a5689270-22d8-4a27-847f-79733a2db487/artifacts/jig16627_tata.png"},
	{Brand: "Mahindra", CarModel: "Mahindra & Mahindra", CurrentMembers: 41,
		ImageURL: "https://customer-assets.emergentagent.com/job_a5689270-22d8-4a27-847f-79733a2db487/artifacts/y5bo7393_mahindra.png"},
	{Brand: "Kia", CarModel: "Kia Motors", CurrentMembers: 28,
		ImageURL: "https://customer-assets.emergentagent.com/job_a5689270-22d8-4a27-847f-79733a2db487/artifacts/ynyx5p8u_Kia.png"},
	{Brand: "Hyundai", CarModel: "Hyundai Motors", CurrentMembers: 35,
		ImageURL: "https://customer-assets.emergentagent.com/job_a5689270-22d8-4a27-847f-79733a2db487/artifacts/pl3kib9p_Hyundai.png"},
	{Brand: "Honda", CarModel: "Honda Cars", CurrentMembers: 29,
		ImageURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/7/76/Honda_logo.svg/2560px-Honda_logo.svg.png"},
	{Brand: "Maruti", CarModel: "Maruti Suzuki", CurrentMembers: 44,
		ImageURL: "https://customer-assets.emergentagent.com/job_a5689270-22d8-4a27-847f-79733a2db487/artifacts/pc3414xi_Maruti%20Suzuki.jpg"},
	{Brand: "Volkswagen", CarModel: "Volkswagen", CurrentMembers: 22,
		ImageURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/6/6d/Volkswagen_logo_2019.svg/2560px-Volkswagen_logo_2019.svg.png"},
	{Brand: "Toyota", CarModel: "Toyota", CurrentMembers: 38,
		ImageURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/9/9d/Toyota_carlogo.svg/2560px-Toyota_carlogo.svg.png"},
}

// SeedSamples creates one showcase group for every brand that has none.
// Brands with a group are skipped so live counters are never rewritten. Every
// brand is attempted; failures are aggregated.
func (s *service) SeedSamples(ctx context.Context) (*SeedResult, error) {
	res := &SeedResult{Message: "Sample data seeded successfully", Groups: []GroupDTO{}}
	var errs error
	for _, sample := range sampleGroups {
		sample.City = sampleCity
		sample.MaxMembers = sampleMaxMembers

		group, created, err := s.repo.CreateIfBrandMissing(ctx, sample)
		if err != nil {
			errs = multierr.Append(errs, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "seed "+sample.Brand))
			continue
		}
		if created {
			res.Created++
		} else {
			res.Skipped++
		}
		res.Groups = append(res.Groups, *FromModel(group))
	}
	if errs != nil {
		s.logg.Error(ctx, "sample group seeding incomplete", errs)
		return res, pkgerrors.Wrap(pkgerrors.CodeInternal, errs, "seed sample groups")
	}
	s.logg.Info(s.logg.WithFields(ctx, map[string]any{"created": res.Created, "skipped": res.Skipped}), "sample groups seeded")
	return res, nil
}
