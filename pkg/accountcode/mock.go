package accountcode

import "txkernel/pkg/types"

// Roots of the mock account interface, in declaration order.
var mockRoots = [...]string{
	"0x1d765c651d992d85111d985b5a508756a84c364420520b301e062a6e0167e561",
	"0xd5891406d96a181a4c5b75de7de5594d9c0426b811d8bf6a07204bc1abf140d2",
	"0x7950a8aa8287efbf9319153d1e5947a08f81c11f403c05795217fa8275735dea",
	"0x74bed297b7f9f5ea4974979c2372b207be93e80de0412402d0c3924c790ccdee",
	"0x67a570600d2b7a5573db4b3c0b867036ed12530200af3f63e7ad1d711d0cb2e4",
	"0x615a8d46b30a6e58728c1c5ede0b8194a9f0333a0c01d17481dacd96bd43ae41",
	"0xb5f101a66f0f51336180fa332f44aa908e3676eea97d8b968db20a07d8056864",
	"0xab296320b75c497cb0a9a9309a429a6dc80cc6746cd36acd99ddde11d0bc3a1b",
	"0xc9a55373d27e2afc62bc94a239e2541ec547835de70ab915333a76b4895742a9",
	"0xff06b90f849c4b262cbfbea67042c4ea017ea0e9c558848a951d44b23370bec5",
	"0x8ef0092134469a1330e3c468f57c7f085ce611645d09cc7516c786fefc71d794",
}

const (
	MockReceiveAssetIndex types.ProcedureIndex = iota
	MockSendAssetIndex
	MockIncrNonceIndex
	MockSetItemIndex
	MockSetMapItemIndex
	MockSetCodeIndex
	MockCreateNoteIndex
	MockAddAssetToNoteIndex
	MockRemoveAssetIndex
	MockAccountProcedure1Index
	MockAccountProcedure2Index
)

// MockRoot returns the root of the mock account procedure at index.
func MockRoot(index types.ProcedureIndex) types.Digest {
	d, err := types.DigestFromHex(mockRoots[index])
	if err != nil {
		panic(err)
	}
	return d
}

// MockAccountCode returns the account code of the mock account used in
// kernel tests.
func MockAccountCode() *AccountCode {
	commitments := make([]types.Digest, len(mockRoots))
	for i := range mockRoots {
		commitments[i] = MockRoot(types.ProcedureIndex(i))
	}
	code, err := FromCommitments(commitments...)
	if err != nil {
		panic(err)
	}
	return code
}
