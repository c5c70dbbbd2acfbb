package osmosis

import (
	"fmt"
	"strings"
)

// MsgKind is the operation family of a transaction, derived from the type
// of its first message.
type MsgKind int

const (
	MsgKindUnknown MsgKind = iota
	MsgKindSwap
	MsgKindTransfer
	MsgKindJoinPool
	MsgKindExitPool
	MsgKindLockTokens
	MsgKindDelegate
	MsgKindUpdateClient
)

var msgKinds = map[string]MsgKind{
	"MsgSwapExactAmountIn":      MsgKindSwap,
	"MsgJoinSwapExternAmountIn": MsgKindSwap,
	"MsgTransfer":               MsgKindTransfer,
	"MsgJoinPool":               MsgKindJoinPool,
	"MsgExitPool":               MsgKindExitPool,
	"MsgSend":                   MsgKindLockTokens,
	"MsgLockTokens":             MsgKindLockTokens,
	"MsgDelegate":               MsgKindDelegate,
	"MsgUpdateClient":           MsgKindUpdateClient,
}

var msgKindNames = [...]string{
	"unknown",
	"swap",
	"transfer",
	"join_pool",
	"exit_pool",
	"lock_tokens",
	"delegate",
	"update_client",
}

func (k MsgKind) String() string {
	if k >= 0 && int(k) < len(msgKindNames) {
		return msgKindNames[k]
	}
	return fmt.Sprintf("MsgKind(%d)", int(k))
}

// ChargesFee is false for MsgUpdateClient: the relayer pays, not the
// journaled address.
func (k MsgKind) ChargesFee() bool {
	return k != MsgKindUpdateClient
}

// MsgTypeName strips the proto package, "/osmosis.gamm.v1beta1.MsgJoinPool" -> "MsgJoinPool".
func MsgTypeName(msgType string) string {
	if i := strings.LastIndex(msgType, "."); i >= 0 {
		return msgType[i+1:]
	}
	return strings.TrimPrefix(msgType, "/")
}

func Classify(msgType string) MsgKind {
	if kind, ok := msgKinds[MsgTypeName(msgType)]; ok {
		return kind
	}
	return MsgKindUnknown
}
