package chainparams

import (
	"fmt"
	"strconv"

	"github.com/setavenger/chainparams/consensus"
	"github.com/setavenger/chainparams/logging"
	"github.com/setavenger/chainparams/utils"
)

// Option names understood by the devnet and regtest constructors.
const (
	OptDevnet                     = "devnet"
	OptFastPrune                  = "fastprune"
	OptVBParams                   = "vbparams"
	OptDIP3Params                 = "dip3params"
	OptDIP8Params                 = "dip8params"
	OptBudgetParams               = "budgetparams"
	OptLLMQTestParams             = "llmqtestparams"
	OptLLMQTestInstantSendParams  = "llmqtestinstantsendparams"
	OptLLMQTestInstantSend        = "llmqtestinstantsend"
	OptLLMQTestInstantSendDIP0024 = "llmqtestinstantsenddip0024"
	OptMinimumDifficultyBlocks    = "minimumdifficultyblocks"
	OptHighSubsidyBlocks          = "highsubsidyblocks"
	OptHighSubsidyFactor          = "highsubsidyfactor"
	OptLLMQChainLocks             = "llmqchainlocks"
	OptLLMQInstantSend            = "llmqinstantsend"
	OptLLMQInstantSendDIP0024     = "llmqinstantsenddip0024"
	OptLLMQPlatform               = "llmqplatform"
	OptLLMQMnhf                   = "llmqmnhf"
	OptLLMQDevnetParams           = "llmqdevnetparams"
	OptPowTargetSpacing           = "powtargetspacing"
)

const (
	vbParamsShape = "<deployment>:<start>:<end> or " +
		"<deployment>:<start>:<end>:<window>:<threshold> or " +
		"<deployment>:<start>:<end>:<window>:<thresholdstart>:<thresholdmin>:<falloffcoeff>:<useehf>"
	sizeThresholdShape = "<size>:<threshold>"
)

// Option documents one override for flag registration.
type Option struct {
	Name     string
	Usage    string
	Multi    bool
	Bool     bool
	Networks []string
}

// Options lists every override in the order they are applied.
var Options = []Option{
	{Name: OptDevnet, Usage: "devnet name suffix, the network is called devnet-<name>", Networks: []string{"devnet"}},
	{Name: OptMinimumDifficultyBlocks, Usage: "number of blocks mined with minimum difficulty", Networks: []string{"devnet"}},
	{Name: OptHighSubsidyBlocks, Usage: "number of blocks with a higher subsidy", Networks: []string{"devnet"}},
	{Name: OptHighSubsidyFactor, Usage: "subsidy multiplier for the high subsidy blocks", Networks: []string{"devnet"}},
	{Name: OptLLMQChainLocks, Usage: "quorum type for ChainLocks, must not rotate", Networks: []string{"devnet"}},
	{Name: OptLLMQInstantSend, Usage: "quorum type for InstantSend, must not rotate", Networks: []string{"devnet"}},
	{Name: OptLLMQInstantSendDIP0024, Usage: "quorum type for DIP0024 InstantSend, must rotate", Networks: []string{"devnet"}},
	{Name: OptLLMQPlatform, Usage: "quorum type for platform signing", Networks: []string{"devnet"}},
	{Name: OptLLMQMnhf, Usage: "quorum type for masternode hard fork signalling", Networks: []string{"devnet"}},
	{Name: OptLLMQDevnetParams, Usage: "llmq_devnet " + sizeThresholdShape, Networks: []string{"devnet"}},
	{Name: OptPowTargetSpacing, Usage: "target block spacing in seconds", Networks: []string{"devnet"}},
	{Name: OptFastPrune, Usage: "prune after 100 blocks instead of 1000", Bool: true, Networks: []string{"regtest"}},
	{Name: OptVBParams, Usage: vbParamsShape, Multi: true, Networks: []string{"regtest"}},
	{Name: OptDIP3Params, Usage: "<activation>:<enforcement>", Networks: []string{"regtest"}},
	{Name: OptDIP8Params, Usage: "<activation>", Networks: []string{"regtest"}},
	{Name: OptBudgetParams, Usage: "<masternode>:<budget>:<superblock>", Networks: []string{"regtest"}},
	{Name: OptLLMQTestParams, Usage: "llmq_test " + sizeThresholdShape, Networks: []string{"regtest"}},
	{Name: OptLLMQTestInstantSendParams, Usage: "llmq_test_instantsend " + sizeThresholdShape, Networks: []string{"regtest"}},
	{Name: OptLLMQTestInstantSend, Usage: "quorum type for InstantSend, must not rotate", Networks: []string{"regtest"}},
	{Name: OptLLMQTestInstantSendDIP0024, Usage: "quorum type for DIP0024 InstantSend, must rotate", Networks: []string{"regtest"}},
}

// VersionBitsUpdate is a parsed -vbparams value.
type VersionBitsUpdate struct {
	Deployment     consensus.DeploymentPos
	StartTime      int64
	Timeout        int64
	WindowSize     int64
	ThresholdStart int64
	ThresholdMin   int64
	FalloffCoeff   int64
	UseEHF         int64
}

// ParseVersionBitsParams accepts 3, 5 or 8 colon separated fields. Fields
// that are not given are consensus.Unchanged.
func ParseVersionBitsParams(value string) (VersionBitsUpdate, error) {
	fields := utils.SplitFields(value)
	if len(fields) != 3 && len(fields) != 5 && len(fields) != 8 {
		return VersionBitsUpdate{}, &OverrideError{
			Option: OptVBParams, Expected: vbParamsShape, Value: value, Err: ErrMalformedParams,
		}
	}

	u := VersionBitsUpdate{
		WindowSize:     consensus.Unchanged,
		ThresholdStart: consensus.Unchanged,
		ThresholdMin:   consensus.Unchanged,
		FalloffCoeff:   consensus.Unchanged,
		UseEHF:         consensus.Unchanged,
	}

	targets := []struct {
		name string
		dst  *int64
	}{
		{"nStartTime", &u.StartTime},
		{"nTimeout", &u.Timeout},
		{"nWindowSize", &u.WindowSize},
		{"nThresholdStart", &u.ThresholdStart},
		{"nThresholdMin", &u.ThresholdMin},
		{"nFalloffCoeff", &u.FalloffCoeff},
		{"nUseEHF", &u.UseEHF},
	}
	for i, field := range fields[1:] {
		v, err := utils.ParseInt64(field)
		if err != nil {
			return VersionBitsUpdate{}, &OverrideError{
				Option: OptVBParams, Expected: "an integer", Value: field, Field: targets[i].name, Err: ErrInvalidInteger,
			}
		}
		*targets[i].dst = v
	}

	pos, ok := consensus.DeploymentByName(fields[0])
	if !ok {
		return VersionBitsUpdate{}, &OverrideError{
			Option: OptVBParams, Expected: "a known deployment name", Value: fields[0], Field: "deployment", Err: ErrUnknownDeployment,
		}
	}
	u.Deployment = pos
	return u, nil
}

// parseInt32Fields splits value and parses exactly len(names) integers.
func parseInt32Fields(option, value, shape string, names ...string) ([]int32, error) {
	fields := utils.SplitFields(value)
	if len(fields) != len(names) {
		return nil, &OverrideError{Option: option, Expected: shape, Value: value, Err: ErrMalformedParams}
	}
	out := make([]int32, len(fields))
	for i, field := range fields {
		v, err := utils.ParseInt32(field)
		if err != nil {
			return nil, &OverrideError{
				Option: option, Expected: "an integer", Value: field, Field: names[i], Err: ErrInvalidInteger,
			}
		}
		out[i] = v
	}
	return out, nil
}

func (p *Params) applyVersionBitsOverrides(args Args) error {
	if !args.IsArgSet(OptVBParams) {
		return nil
	}
	for _, value := range args.GetArgs(OptVBParams) {
		u, err := ParseVersionBitsParams(value)
		if err != nil {
			return err
		}
		p.Consensus.SetDeploymentWindow(
			u.Deployment, u.StartTime, u.Timeout, u.WindowSize, u.ThresholdStart, u.ThresholdMin, u.FalloffCoeff, u.UseEHF,
		)
		logging.L.Info().
			Str("deployment", u.Deployment.String()).
			Int64("start", u.StartTime).
			Int64("timeout", u.Timeout).
			Int64("window", u.WindowSize).
			Int64("thresholdstart", u.ThresholdStart).
			Int64("thresholdmin", u.ThresholdMin).
			Int64("falloffcoeff", u.FalloffCoeff).
			Int64("useehf", u.UseEHF).
			Msg("setting version bits activation parameters")
	}
	return nil
}

func (p *Params) applyDIP3Overrides(args Args) error {
	if !args.IsArgSet(OptDIP3Params) {
		return nil
	}
	v, err := parseInt32Fields(OptDIP3Params, args.GetArg(OptDIP3Params, ""),
		"<activation>:<enforcement>", "activation height", "enforcement height")
	if err != nil {
		return err
	}
	p.Consensus.DIP0003Height = v[0]
	p.Consensus.DIP0003EnforcementHeight = v[1]
	logging.L.Info().Int32("activation", v[0]).Int32("enforcement", v[1]).Msg("setting DIP3 parameters")
	return nil
}

func (p *Params) applyDIP8Overrides(args Args) error {
	if !args.IsArgSet(OptDIP8Params) {
		return nil
	}
	v, err := parseInt32Fields(OptDIP8Params, args.GetArg(OptDIP8Params, ""), "<activation>", "activation height")
	if err != nil {
		return err
	}
	p.Consensus.DIP0008Height = v[0]
	logging.L.Info().Int32("activation", v[0]).Msg("setting DIP8 parameters")
	return nil
}

func (p *Params) applyBudgetOverrides(args Args) error {
	if !args.IsArgSet(OptBudgetParams) {
		return nil
	}
	v, err := parseInt32Fields(OptBudgetParams, args.GetArg(OptBudgetParams, ""),
		"<masternode>:<budget>:<superblock>", "masternode start height", "budget start block", "superblock start height")
	if err != nil {
		return err
	}
	p.Consensus.MasternodePaymentsStartBlock = v[0]
	p.Consensus.BudgetPaymentsStartBlock = v[1]
	p.Consensus.SuperblockStartBlock = v[2]
	logging.L.Info().
		Int32("masternode", v[0]).
		Int32("budget", v[1]).
		Int32("superblock", v[2]).
		Msg("setting budget parameters")
	return nil
}

// applyProfileOverride handles the <size>:<threshold> options. The minimum
// size and bad votes threshold follow the threshold.
func (p *Params) applyProfileOverride(args Args, option string, t consensus.LLMQType) error {
	if !args.IsArgSet(option) {
		return nil
	}
	v, err := parseInt32Fields(option, args.GetArg(option, ""), sizeThresholdShape,
		t.String()+" size", t.String()+" threshold")
	if err != nil {
		return err
	}
	size, threshold := v[0], v[1]
	if err := p.Consensus.LLMQs.OverrideProfile(t, size, threshold, threshold); err != nil {
		return &OverrideError{Option: option, Expected: "an active quorum type", Value: t.String(), Err: err}
	}
	logging.L.Info().
		Str("llmq", t.String()).
		Int32("size", size).
		Int32("threshold", threshold).
		Msg("setting llmq parameters")
	return nil
}

func roleShape(role consensus.LLMQRole) string {
	switch role {
	case consensus.RoleInstantSendDIP0024:
		return "name of an active quorum type using rotation"
	case consensus.RoleChainLocks, consensus.RoleInstantSend:
		return "name of an active quorum type not using rotation"
	}
	return "name of an active quorum type"
}

// applyRoleOverride rebinds role to the quorum type named by option.
func (p *Params) applyRoleOverride(args Args, option string, role consensus.LLMQRole) error {
	if !args.IsArgSet(option) {
		return nil
	}
	name := args.GetArg(option, p.LLMQRole(role).Name)
	registry := p.Consensus.LLMQs

	t, err := registry.TypeByName(name)
	if err == nil {
		err = registry.AssignRole(role, t)
	}
	if err != nil {
		return &OverrideError{Option: option, Expected: roleShape(role), Value: name, Err: err}
	}
	logging.L.Info().Str("role", role.String()).Str("llmq", t.String()).Msgf("setting %s", option)
	return nil
}

func (p *Params) applyDevnetSubsidyOverrides(args Args) error {
	if !args.IsArgSet(OptMinimumDifficultyBlocks) &&
		!args.IsArgSet(OptHighSubsidyBlocks) &&
		!args.IsArgSet(OptHighSubsidyFactor) {
		return nil
	}

	targets := []struct {
		option string
		dst    *int32
	}{
		{OptMinimumDifficultyBlocks, &p.Consensus.MinimumDifficultyBlocks},
		{OptHighSubsidyBlocks, &p.Consensus.HighSubsidyBlocks},
		{OptHighSubsidyFactor, &p.Consensus.HighSubsidyFactor},
	}
	values := make([]int32, len(targets))
	for i, target := range targets {
		raw := args.GetArg(target.option, strconv.FormatInt(int64(*target.dst), 10))
		v, err := utils.ParseInt32(raw)
		if err != nil {
			return &OverrideError{Option: target.option, Expected: "an integer", Value: raw, Err: ErrInvalidInteger}
		}
		values[i] = v
	}
	for i, target := range targets {
		*target.dst = values[i]
	}

	logging.L.Info().
		Int32("minimumdifficultyblocks", values[0]).
		Int32("highsubsidyblocks", values[1]).
		Int32("highsubsidyfactor", values[2]).
		Msg("setting devnet subsidy and difficulty parameters")
	return nil
}

func (p *Params) applyPowTargetSpacingOverride(args Args) error {
	if !args.IsArgSet(OptPowTargetSpacing) {
		return nil
	}
	raw := args.GetArg(OptPowTargetSpacing, "")
	spacing, err := utils.ParseInt64(raw)
	if err != nil {
		return &OverrideError{Option: OptPowTargetSpacing, Expected: "an integer", Value: raw, Err: ErrInvalidInteger}
	}
	if spacing < 1 {
		return &OverrideError{Option: OptPowTargetSpacing, Expected: "at least 1 second", Value: raw, Err: ErrInvalidValue}
	}
	p.Consensus.PowTargetSpacing = spacing
	logging.L.Info().Int64("spacing", spacing).Msg("setting powTargetSpacing")
	return nil
}

// DevnetName derives the network name from the -devnet option.
func DevnetName(args Args) string {
	name := args.GetArg(OptDevnet, "")
	if name == "" {
		return "devnet"
	}
	return fmt.Sprintf("devnet-%s", name)
}
