package catalog

import "github.com/cbaxter/domainfolio/internal/model"

// Seed returns the portfolio dataset compiled into the binary.
func Seed() []model.Listing {
	return []model.Listing{
		{
			ID:              1,
			Name:            "TechStartup.com",
			Price:           25000,
			Category:        "Technology",
			Extension:       "com",
			Length:          11,
			Age:             5,
			Traffic:         1200,
			Description:     "Perfect brandable domain for tech startups and innovation companies",
			OwnerNotes:      "Acquired this gem in 2019. The .com extension and clear branding make it ideal for any technology startup.",
			Keywords:        []string{"tech", "startup", "innovation"},
			AcquisitionYear: 2019,
			Featured:        true,
		},
		{
			ID:              2,
			Name:            "DigitalMarket.org",
			Price:           15000,
			Category:        "Business",
			Extension:       "org",
			Length:          13,
			Age:             3,
			Traffic:         800,
			Description:     "Ideal for digital marketing agencies and consultants",
			OwnerNotes:      "Great for establishing authority in the digital marketing space. The .org extension adds credibility.",
			Keywords:        []string{"digital", "market", "business"},
			AcquisitionYear: 2021,
		},
		{
			ID:              3,
			Name:            "CloudSolutions.net",
			Price:           18500,
			Category:        "Technology",
			Extension:       "net",
			Length:          14,
			Age:             4,
			Traffic:         950,
			Description:     "Great for cloud service providers and SaaS companies",
			OwnerNotes:      "With cloud computing dominating the tech landscape, this domain has incredible potential.",
			Keywords:        []string{"cloud", "solutions", "saas"},
			AcquisitionYear: 2020,
		},
		{
			ID:              4,
			Name:            "GreenEnergy.eco",
			Price:           12000,
			Category:        "Environment",
			Extension:       "eco",
			Length:          11,
			Age:             2,
			Traffic:         600,
			Description:     "Perfect for renewable energy and sustainability businesses",
			OwnerNotes:      "The .eco extension is perfect for environmental businesses. This sector is booming!",
			Keywords:        []string{"green", "energy", "eco"},
			AcquisitionYear: 2022,
		},
		{
			ID:              5,
			Name:            "CryptoExchange.io",
			Price:           45000,
			Category:        "Finance",
			Extension:       "io",
			Length:          14,
			Age:             6,
			Traffic:         2100,
			Description:     "Premium domain for cryptocurrency and blockchain projects",
			OwnerNotes:      "My crown jewel! Acquired before the crypto boom. The .io extension is highly valued in tech circles.",
			Keywords:        []string{"crypto", "exchange", "blockchain"},
			AcquisitionYear: 2018,
			Featured:        true,
		},
		{
			ID:              6,
			Name:            "AIConsulting.ai",
			Price:           35000,
			Category:        "Technology",
			Extension:       "ai",
			Length:          12,
			Age:             3,
			Traffic:         1500,
			Description:     "Ideal for AI consulting and machine learning companies",
			OwnerNotes:      "With AI being the next big thing, this domain is positioned perfectly for the future.",
			Keywords:        []string{"ai", "consulting", "ml"},
			AcquisitionYear: 2021,
			Featured:        true,
		},
	}
}
