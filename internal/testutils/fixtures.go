package testutils

import (
	domain "github.com/statblock/pokesheet/internal/domain/pokemon"
)

// CreateTestPokemon builds a populated pokémon snapshot for tests
func CreateTestPokemon(id, trainerID, name string) *domain.Pokemon {
	p := domain.New()
	p.ID = id
	p.TrainerID = trainerID
	p.Name = name
	p = p.SetSpecies("pikachu", "Pikachu")
	p = p.SetExperience("250")
	p = p.SetBaseStat(domain.StatHP, "4")
	p = p.SetAddedStat(domain.StatHP, "2")
	p = p.SetBaseStat(domain.StatAttack, "6")
	p = p.SetAddedStat(domain.StatAttack, "5")
	p = p.SetBaseStat(domain.StatDefense, "4")
	p = p.SetBaseStat(domain.StatSpecialAttack, "5")
	p = p.SetBaseStat(domain.StatSpecialDefense, "5")
	p = p.SetBaseStat(domain.StatSpeed, "9")
	p = p.SetAddedStat(domain.StatSpeed, "8")
	p = p.SetCombatStage(domain.StatSpeed, 1)
	p = p.SetHealth(30)
	p = p.AddCapability("overland", "Overland", 6)
	p = p.AddCapability("zapper", "Zapper", 0)
	return p
}
