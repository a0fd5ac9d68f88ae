package tree

import "evogambit/internal/model"

// catalogRow is the compact authoring form of one evolution definition.
type catalogRow struct {
	id      string
	name    string
	desc    string
	tier    int
	rarity  model.Rarity
	parent  string
	cost    model.ResourceCost
	effects []model.Effect
}

func (r catalogRow) toEvolution(pieceType model.PieceType) model.Evolution {
	var requires []string
	if r.parent != "" {
		requires = []string{r.parent}
	}
	return model.Evolution{
		ID:          r.id,
		Name:        r.name,
		Description: r.desc,
		PieceType:   pieceType,
		BaseCost:    r.cost,
		Effects:     r.effects,
		Requires:    requires,
		Tier:        r.tier,
		Rarity:      r.rarity,
	}
}

func attrEffect(target string, amount float64) model.Effect {
	return model.Effect{Kind: model.EffectAttribute, Target: target, Amount: amount}
}

func abilityEffect(target string) model.Effect {
	return model.Effect{Kind: model.EffectAbility, Target: target}
}

// catalogRows holds the shipped evolution trees. Each piece type's rows form
// a forest: tier-1 rows have no parent, every other row names exactly one.
// Ids are globally unique across piece types.
var catalogRows = map[model.PieceType][]catalogRow{
	model.Pawn: {
		{id: "pawn_swift_advance", name: "Swift Advance", desc: "Extends forward movement.", tier: 1, rarity: model.RarityCommon,
			cost: model.ResourceCost{model.TemporalEssence: 100}, effects: []model.Effect{attrEffect("moveRange", 1)}},
		{id: "pawn_iron_resolve", name: "Iron Resolve", desc: "Hardens the front line.", tier: 1, rarity: model.RarityCommon,
			cost: model.ResourceCost{model.TemporalEssence: 80, model.MnemonicDust: 20}, effects: []model.Effect{attrEffect("defense", 1)}},
		{id: "pawn_keen_edge", name: "Keen Edge", desc: "Sharpens diagonal strikes.", tier: 1, rarity: model.RarityUncommon,
			cost: model.ResourceCost{model.MnemonicDust: 60}, effects: []model.Effect{attrEffect("attackPower", 1)}},
		{id: "pawn_twin_step", name: "Twin Step", desc: "Repeats the opening surge at will.", tier: 2, rarity: model.RarityUncommon, parent: "pawn_swift_advance",
			cost: model.ResourceCost{model.TemporalEssence: 220}, effects: []model.Effect{abilityEffect("twin_advance")}},
		{id: "pawn_shadow_step", name: "Shadow Step", desc: "Slips past blockers once per game.", tier: 2, rarity: model.RarityRare, parent: "pawn_swift_advance",
			cost: model.ResourceCost{model.TemporalEssence: 180, model.AetherShards: 40}, effects: []model.Effect{abilityEffect("shadow_step")}},
		{id: "pawn_phalanx_guard", name: "Phalanx Guard", desc: "Adjacent pawns share defense.", tier: 2, rarity: model.RarityRare, parent: "pawn_iron_resolve",
			cost: model.ResourceCost{model.MnemonicDust: 150, model.AetherShards: 30}, effects: []model.Effect{abilityEffect("phalanx_guard")}},
		{id: "pawn_vanguard_oath", name: "Vanguard Oath", desc: "Trades safety for reach.", tier: 2, rarity: model.RarityUncommon, parent: "pawn_keen_edge",
			cost: model.ResourceCost{model.MnemonicDust: 130}, effects: []model.Effect{attrEffect("attackPower", 2)}},
		{id: "pawn_tempest_charge", name: "Tempest Charge", desc: "A promoted pawn keeps its momentum.", tier: 3, rarity: model.RarityEpic, parent: "pawn_twin_step",
			cost: model.ResourceCost{model.TemporalEssence: 500, model.ArcaneEnergy: 80}, effects: []model.Effect{attrEffect("promotionDrive", 2)}},
		{id: "pawn_ghost_column", name: "Ghost Column", desc: "The file remembers every fallen pawn.", tier: 3, rarity: model.RarityEpic, parent: "pawn_shadow_step",
			cost: model.ResourceCost{model.AetherShards: 200, model.ArcaneEnergy: 60}, effects: []model.Effect{abilityEffect("ghost_column")}},
		{id: "pawn_crowned_ascent", name: "Crowned Ascent", desc: "Promotion transcends the eighth rank.", tier: 4, rarity: model.RarityLegendary, parent: "pawn_tempest_charge",
			cost: model.ResourceCost{model.TemporalEssence: 900, model.ArcaneEnergy: 250}, effects: []model.Effect{attrEffect("promotionDrive", 5)}},
	},
	model.Knight: {
		{id: "knight_long_leap", name: "Long Leap", desc: "Stretches the L one square further.", tier: 1, rarity: model.RarityCommon,
			cost: model.ResourceCost{model.TemporalEssence: 120}, effects: []model.Effect{attrEffect("leapRange", 1)}},
		{id: "knight_steel_shoes", name: "Steel Shoes", desc: "Landing zones become strongholds.", tier: 1, rarity: model.RarityCommon,
			cost: model.ResourceCost{model.MnemonicDust: 90}, effects: []model.Effect{attrEffect("defense", 1)}},
		{id: "knight_war_cry", name: "War Cry", desc: "Arrival rattles adjacent defenders.", tier: 1, rarity: model.RarityUncommon,
			cost: model.ResourceCost{model.TemporalEssence: 100, model.MnemonicDust: 40}, effects: []model.Effect{attrEffect("attackPower", 1)}},
		{id: "knight_double_vault", name: "Double Vault", desc: "Two leaps in a single turn.", tier: 2, rarity: model.RarityRare, parent: "knight_long_leap",
			cost: model.ResourceCost{model.TemporalEssence: 300, model.AetherShards: 50}, effects: []model.Effect{abilityEffect("double_vault")}},
		{id: "knight_moonward_arc", name: "Moonward Arc", desc: "The leap bends around threats.", tier: 2, rarity: model.RarityRare, parent: "knight_long_leap",
			cost: model.ResourceCost{model.AetherShards: 120}, effects: []model.Effect{abilityEffect("moonward_arc")}},
		{id: "knight_bulwark_landing", name: "Bulwark Landing", desc: "Cannot be captured the turn it lands.", tier: 2, rarity: model.RarityUncommon, parent: "knight_steel_shoes",
			cost: model.ResourceCost{model.MnemonicDust: 200}, effects: []model.Effect{attrEffect("defense", 2)}},
		{id: "knight_banner_charge", name: "Banner Charge", desc: "Nearby pawns advance with the charge.", tier: 2, rarity: model.RarityRare, parent: "knight_war_cry",
			cost: model.ResourceCost{model.MnemonicDust: 160, model.ArcaneEnergy: 30}, effects: []model.Effect{abilityEffect("banner_charge")}},
		{id: "knight_comet_trail", name: "Comet Trail", desc: "The path of the leap burns.", tier: 3, rarity: model.RarityEpic, parent: "knight_double_vault",
			cost: model.ResourceCost{model.AetherShards: 260, model.ArcaneEnergy: 90}, effects: []model.Effect{attrEffect("attackPower", 3)}},
		{id: "knight_eclipse_leap", name: "Eclipse Leap", desc: "Leaps through occupied squares.", tier: 3, rarity: model.RarityEpic, parent: "knight_moonward_arc",
			cost: model.ResourceCost{model.AetherShards: 300, model.ArcaneEnergy: 70}, effects: []model.Effect{abilityEffect("eclipse_leap")}},
		{id: "knight_paragon_of_chivalry", name: "Paragon of Chivalry", desc: "The board itself yields passage.", tier: 4, rarity: model.RarityLegendary, parent: "knight_comet_trail",
			cost: model.ResourceCost{model.TemporalEssence: 800, model.ArcaneEnergy: 300}, effects: []model.Effect{attrEffect("leapRange", 3)}},
	},
	model.Bishop: {
		{id: "bishop_far_sight", name: "Far Sight", desc: "Sees across the whole diagonal.", tier: 1, rarity: model.RarityCommon,
			cost: model.ResourceCost{model.TemporalEssence: 110}, effects: []model.Effect{attrEffect("diagonalReach", 1)}},
		{id: "bishop_quiet_faith", name: "Quiet Faith", desc: "Steadies the cleric under threat.", tier: 1, rarity: model.RarityCommon,
			cost: model.ResourceCost{model.MnemonicDust: 80}, effects: []model.Effect{attrEffect("defense", 1)}},
		{id: "bishop_searing_gaze", name: "Searing Gaze", desc: "The stare alone wounds.", tier: 1, rarity: model.RarityUncommon,
			cost: model.ResourceCost{model.MnemonicDust: 70, model.AetherShards: 20}, effects: []model.Effect{attrEffect("attackPower", 1)}},
		{id: "bishop_prism_lance", name: "Prism Lance", desc: "The diagonal splits at a defender.", tier: 2, rarity: model.RarityRare, parent: "bishop_far_sight",
			cost: model.ResourceCost{model.AetherShards: 140}, effects: []model.Effect{abilityEffect("prism_lance")}},
		{id: "bishop_mirror_walk", name: "Mirror Walk", desc: "Crosses to the opposite color once.", tier: 2, rarity: model.RarityEpic, parent: "bishop_far_sight",
			cost: model.ResourceCost{model.AetherShards: 180, model.ArcaneEnergy: 40}, effects: []model.Effect{abilityEffect("mirror_walk")}},
		{id: "bishop_sanctuary", name: "Sanctuary", desc: "Allies beside the bishop are shielded.", tier: 2, rarity: model.RarityRare, parent: "bishop_quiet_faith",
			cost: model.ResourceCost{model.MnemonicDust: 190}, effects: []model.Effect{abilityEffect("sanctuary")}},
		{id: "bishop_zealot_sermon", name: "Zealot Sermon", desc: "Converts hesitation into fury.", tier: 2, rarity: model.RarityUncommon, parent: "bishop_searing_gaze",
			cost: model.ResourceCost{model.MnemonicDust: 150, model.ArcaneEnergy: 20}, effects: []model.Effect{attrEffect("attackPower", 2)}},
		{id: "bishop_radiant_cross", name: "Radiant Cross", desc: "Both diagonals blaze at once.", tier: 3, rarity: model.RarityEpic, parent: "bishop_prism_lance",
			cost: model.ResourceCost{model.AetherShards: 280, model.ArcaneEnergy: 80}, effects: []model.Effect{attrEffect("diagonalReach", 3)}},
		{id: "bishop_veil_piercer", name: "Veil Piercer", desc: "No interposition holds.", tier: 3, rarity: model.RarityEpic, parent: "bishop_mirror_walk",
			cost: model.ResourceCost{model.AetherShards: 320, model.ArcaneEnergy: 90}, effects: []model.Effect{abilityEffect("veil_piercer")}},
		{id: "bishop_living_light", name: "Living Light", desc: "The bishop becomes the diagonal.", tier: 4, rarity: model.RarityLegendary, parent: "bishop_radiant_cross",
			cost: model.ResourceCost{model.TemporalEssence: 750, model.ArcaneEnergy: 280}, effects: []model.Effect{attrEffect("diagonalReach", 5)}},
	},
	model.Rook: {
		{id: "rook_rampart", name: "Rampart", desc: "The tower digs in.", tier: 1, rarity: model.RarityCommon,
			cost: model.ResourceCost{model.MnemonicDust: 100}, effects: []model.Effect{attrEffect("defense", 1)}},
		{id: "rook_siege_line", name: "Siege Line", desc: "Files fall faster under bombardment.", tier: 1, rarity: model.RarityCommon,
			cost: model.ResourceCost{model.TemporalEssence: 130}, effects: []model.Effect{attrEffect("attackPower", 1)}},
		{id: "rook_rail_sprint", name: "Rail Sprint", desc: "Open files become highways.", tier: 1, rarity: model.RarityUncommon,
			cost: model.ResourceCost{model.TemporalEssence: 110, model.MnemonicDust: 30}, effects: []model.Effect{attrEffect("lineReach", 1)}},
		{id: "rook_iron_curtain", name: "Iron Curtain", desc: "Nothing crosses the guarded rank.", tier: 2, rarity: model.RarityRare, parent: "rook_rampart",
			cost: model.ResourceCost{model.MnemonicDust: 240}, effects: []model.Effect{abilityEffect("iron_curtain")}},
		{id: "rook_garrison", name: "Garrison", desc: "Pawns shelter inside the tower.", tier: 2, rarity: model.RarityRare, parent: "rook_rampart",
			cost: model.ResourceCost{model.MnemonicDust: 200, model.AetherShards: 40}, effects: []model.Effect{abilityEffect("garrison")}},
		{id: "rook_demolition_shot", name: "Demolition Shot", desc: "Breaks fortified squares.", tier: 2, rarity: model.RarityUncommon, parent: "rook_siege_line",
			cost: model.ResourceCost{model.TemporalEssence: 260}, effects: []model.Effect{attrEffect("attackPower", 2)}},
		{id: "rook_ghost_rails", name: "Ghost Rails", desc: "Castles through occupied squares.", tier: 2, rarity: model.RarityRare, parent: "rook_rail_sprint",
			cost: model.ResourceCost{model.AetherShards: 130}, effects: []model.Effect{abilityEffect("ghost_rails")}},
		{id: "rook_worldspine", name: "Worldspine", desc: "The file extends beyond the board.", tier: 3, rarity: model.RarityEpic, parent: "rook_iron_curtain",
			cost: model.ResourceCost{model.MnemonicDust: 400, model.ArcaneEnergy: 90}, effects: []model.Effect{attrEffect("lineReach", 3)}},
		{id: "rook_avalanche", name: "Avalanche", desc: "The charge carries everything with it.", tier: 3, rarity: model.RarityEpic, parent: "rook_garrison",
			cost: model.ResourceCost{model.AetherShards: 290, model.ArcaneEnergy: 80}, effects: []model.Effect{abilityEffect("avalanche")}},
		{id: "rook_bastion_eternal", name: "Bastion Eternal", desc: "The tower cannot fall while the king stands.", tier: 4, rarity: model.RarityLegendary, parent: "rook_worldspine",
			cost: model.ResourceCost{model.MnemonicDust: 700, model.ArcaneEnergy: 320}, effects: []model.Effect{attrEffect("defense", 5)}},
	},
	model.Queen: {
		{id: "queen_regal_poise", name: "Regal Poise", desc: "Grace sharpens every vector.", tier: 1, rarity: model.RarityCommon,
			cost: model.ResourceCost{model.TemporalEssence: 150}, effects: []model.Effect{attrEffect("dominance", 1)}},
		{id: "queen_courtly_guard", name: "Courtly Guard", desc: "The retinue closes ranks.", tier: 1, rarity: model.RarityCommon,
			cost: model.ResourceCost{model.MnemonicDust: 120}, effects: []model.Effect{attrEffect("defense", 1)}},
		{id: "queen_scepter_strike", name: "Scepter Strike", desc: "Authority lands like a hammer.", tier: 1, rarity: model.RarityUncommon,
			cost: model.ResourceCost{model.TemporalEssence: 140, model.MnemonicDust: 40}, effects: []model.Effect{attrEffect("attackPower", 1)}},
		{id: "queen_twin_court", name: "Twin Court", desc: "Moves twice while undisturbed.", tier: 2, rarity: model.RarityEpic, parent: "queen_regal_poise",
			cost: model.ResourceCost{model.TemporalEssence: 400, model.AetherShards: 80}, effects: []model.Effect{abilityEffect("twin_court")}},
		{id: "queen_silken_net", name: "Silken Net", desc: "Threatened squares stay threatened.", tier: 2, rarity: model.RarityRare, parent: "queen_regal_poise",
			cost: model.ResourceCost{model.AetherShards: 160}, effects: []model.Effect{abilityEffect("silken_net")}},
		{id: "queen_crown_ward", name: "Crown Ward", desc: "Captures against the queen rebound.", tier: 2, rarity: model.RarityRare, parent: "queen_courtly_guard",
			cost: model.ResourceCost{model.MnemonicDust: 260}, effects: []model.Effect{attrEffect("defense", 2)}},
		{id: "queen_sunfall_edict", name: "Sunfall Edict", desc: "One file is forbidden to the enemy.", tier: 2, rarity: model.RarityEpic, parent: "queen_scepter_strike",
			cost: model.ResourceCost{model.ArcaneEnergy: 110}, effects: []model.Effect{abilityEffect("sunfall_edict")}},
		{id: "queen_absolute_dominion", name: "Absolute Dominion", desc: "Every open line belongs to her.", tier: 3, rarity: model.RarityLegendary, parent: "queen_twin_court",
			cost: model.ResourceCost{model.TemporalEssence: 900, model.ArcaneEnergy: 200}, effects: []model.Effect{attrEffect("dominance", 4)}},
		{id: "queen_web_of_threads", name: "Web of Threads", desc: "The net tightens each turn.", tier: 3, rarity: model.RarityEpic, parent: "queen_silken_net",
			cost: model.ResourceCost{model.AetherShards: 340, model.ArcaneEnergy: 90}, effects: []model.Effect{abilityEffect("web_of_threads")}},
		{id: "queen_empress_ascendant", name: "Empress Ascendant", desc: "The game bends around her will.", tier: 4, rarity: model.RarityLegendary, parent: "queen_absolute_dominion",
			cost: model.ResourceCost{model.TemporalEssence: 1200, model.ArcaneEnergy: 400}, effects: []model.Effect{attrEffect("dominance", 6)}},
	},
	model.King: {
		{id: "king_steady_hand", name: "Steady Hand", desc: "The monarch stops flinching.", tier: 1, rarity: model.RarityCommon,
			cost: model.ResourceCost{model.MnemonicDust: 110}, effects: []model.Effect{attrEffect("defense", 1)}},
		{id: "king_rallying_cry", name: "Rallying Cry", desc: "Nearby pieces fight harder.", tier: 1, rarity: model.RarityCommon,
			cost: model.ResourceCost{model.TemporalEssence: 120}, effects: []model.Effect{attrEffect("courtAura", 1)}},
		{id: "king_sovereign_step", name: "Sovereign Step", desc: "The king claims a second square.", tier: 1, rarity: model.RarityUncommon,
			cost: model.ResourceCost{model.TemporalEssence: 140, model.MnemonicDust: 30}, effects: []model.Effect{attrEffect("moveRange", 1)}},
		{id: "king_unbreakable_vow", name: "Unbreakable Vow", desc: "Check loses its sting once per game.", tier: 2, rarity: model.RarityRare, parent: "king_steady_hand",
			cost: model.ResourceCost{model.MnemonicDust: 280}, effects: []model.Effect{abilityEffect("unbreakable_vow")}},
		{id: "king_shield_wall", name: "Shield Wall", desc: "Defenders beside the king harden.", tier: 2, rarity: model.RarityRare, parent: "king_steady_hand",
			cost: model.ResourceCost{model.MnemonicDust: 230, model.AetherShards: 50}, effects: []model.Effect{attrEffect("defense", 2)}},
		{id: "king_heralds_banner", name: "Herald's Banner", desc: "The aura reaches a full rank further.", tier: 2, rarity: model.RarityUncommon, parent: "king_rallying_cry",
			cost: model.ResourceCost{model.TemporalEssence: 250}, effects: []model.Effect{attrEffect("courtAura", 2)}},
		{id: "king_royal_procession", name: "Royal Procession", desc: "Castling works on both wings at once.", tier: 2, rarity: model.RarityRare, parent: "king_sovereign_step",
			cost: model.ResourceCost{model.AetherShards: 150}, effects: []model.Effect{abilityEffect("royal_procession")}},
		{id: "king_crown_of_ages", name: "Crown of Ages", desc: "Every fallen ally strengthens the crown.", tier: 3, rarity: model.RarityEpic, parent: "king_unbreakable_vow",
			cost: model.ResourceCost{model.MnemonicDust: 420, model.ArcaneEnergy: 100}, effects: []model.Effect{attrEffect("courtAura", 3)}},
		{id: "king_last_bastion", name: "Last Bastion", desc: "Alone, the king is hardest to kill.", tier: 3, rarity: model.RarityEpic, parent: "king_shield_wall",
			cost: model.ResourceCost{model.AetherShards: 310, model.ArcaneEnergy: 90}, effects: []model.Effect{attrEffect("defense", 3)}},
		{id: "king_eternal_monarch", name: "Eternal Monarch", desc: "Checkmate must be earned twice.", tier: 4, rarity: model.RarityLegendary, parent: "king_crown_of_ages",
			cost: model.ResourceCost{model.TemporalEssence: 1000, model.ArcaneEnergy: 380}, effects: []model.Effect{abilityEffect("eternal_monarch")}},
	},
}
