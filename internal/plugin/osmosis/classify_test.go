package osmosis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := map[string]MsgKind{
		"/osmosis.gamm.v1beta1.MsgSwapExactAmountIn":      MsgKindSwap,
		"/osmosis.gamm.v1beta1.MsgJoinSwapExternAmountIn": MsgKindSwap,
		"/ibc.applications.transfer.v1.MsgTransfer":       MsgKindTransfer,
		"/osmosis.gamm.v1beta1.MsgJoinPool":               MsgKindJoinPool,
		"/osmosis.gamm.v1beta1.MsgExitPool":               MsgKindExitPool,
		"/osmosis.lockup.MsgLockTokens":                   MsgKindLockTokens,
		"/cosmos.bank.v1beta1.MsgSend":                    MsgKindLockTokens,
		"/cosmos.staking.v1beta1.MsgDelegate":             MsgKindDelegate,
		"/ibc.core.client.v1.MsgUpdateClient":             MsgKindUpdateClient,
		"/cosmos.gov.v1beta1.MsgVote":                     MsgKindUnknown,
		"":                                                MsgKindUnknown,
	}
	for msgType, want := range cases {
		assert.Equal(t, want, Classify(msgType), msgType)
	}
}

func TestMsgTypeName(t *testing.T) {
	assert.Equal(t, "MsgJoinPool", MsgTypeName("/osmosis.gamm.v1beta1.MsgJoinPool"))
	assert.Equal(t, "MsgSend", MsgTypeName("/MsgSend"))
	assert.Equal(t, "MsgSend", MsgTypeName("MsgSend"))
}

func TestMsgKind_ChargesFee(t *testing.T) {
	assert.False(t, MsgKindUpdateClient.ChargesFee())
	for _, k := range []MsgKind{MsgKindSwap, MsgKindTransfer, MsgKindJoinPool, MsgKindExitPool, MsgKindLockTokens, MsgKindDelegate} {
		assert.True(t, k.ChargesFee(), k.String())
	}
}

func TestMsgKind_String(t *testing.T) {
	assert.Equal(t, "join_pool", MsgKindJoinPool.String())
	assert.Equal(t, "unknown", MsgKindUnknown.String())
	assert.Equal(t, "MsgKind(99)", MsgKind(99).String())
}
