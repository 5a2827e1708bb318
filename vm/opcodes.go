package vm

// InstId identifies a decoded instruction. IdIllegal is the sentinel for
// encodings that match no known instruction.
type InstId uint16

const (
	IdIllegal InstId = iota
	IdAdd
	IdAddUw
	IdAddi
	IdAddiw
	IdAddw
	IdAes32dsi
	IdAes32dsmi
	IdAes32esi
	IdAes32esmi
	IdAes64ds
	IdAes64dsm
	IdAes64es
	IdAes64esm
	IdAes64im
	IdAes64ks1i
	IdAes64ks2
	IdAmoaddD
	IdAmoaddW
	IdAmoandD
	IdAmoandW
	IdAmocasD
	IdAmocasQ
	IdAmocasW
	IdAmomaxD
	IdAmomaxW
	IdAmomaxuD
	IdAmomaxuW
	IdAmominD
	IdAmominW
	IdAmominuD
	IdAmominuW
	IdAmoorD
	IdAmoorW
	IdAmoswapD
	IdAmoswapW
	IdAmoxorD
	IdAmoxorW
	IdAnd
	IdAndi
	IdAndn
	IdAuipc
	IdBclr
	IdBclri
	IdBeq
	IdBext
	IdBexti
	IdBge
	IdBgeu
	IdBinv
	IdBinvi
	IdBlt
	IdBltu
	IdBne
	IdBrev8
	IdBset
	IdBseti
	IdCAdd
	IdCAddi
	IdCAddi16sp
	IdCAddi4spn
	IdCAddiw
	IdCAddw
	IdCAnd
	IdCAndi
	IdCBeqz
	IdCBnez
	IdCEbreak
	IdCFld
	IdCFldsp
	IdCFlw
	IdCFlwsp
	IdCFsd
	IdCFsdsp
	IdCFsw
	IdCFswsp
	IdCJ
	IdCJal
	IdCJalr
	IdCJr
	IdCLbu
	IdCLd
	IdCLdsp
	IdCLh
	IdCLhu
	IdCLi
	IdCLui
	IdCLw
	IdCLwsp
	IdCMop
	IdCMul
	IdCMv
	IdCNot
	IdCOr
	IdCSb
	IdCSd
	IdCSdsp
	IdCSextB
	IdCSextH
	IdCSh
	IdCSlli
	IdCSrai
	IdCSrli
	IdCSub
	IdCSubw
	IdCSw
	IdCSwsp
	IdCXor
	IdCZextB
	IdCZextH
	IdCZextW
	IdCboClean
	IdCboFlush
	IdCboInval
	IdCboZero
	IdClmul
	IdClmulh
	IdClmulr
	IdClz
	IdClzw
	IdCpop
	IdCpopw
	IdCsrrc
	IdCsrrci
	IdCsrrs
	IdCsrrsi
	IdCsrrw
	IdCsrrwi
	IdCtz
	IdCtzw
	IdCzeroEqz
	IdCzeroNez
	IdDiv
	IdDivu
	IdDivuw
	IdDivw
	IdDret
	IdEbreak
	IdEcall
	IdFaddD
	IdFaddH
	IdFaddS
	IdFclassD
	IdFclassH
	IdFclassS
	IdFcvtBf16S
	IdFcvtDH
	IdFcvtDL
	IdFcvtDLu
	IdFcvtDS
	IdFcvtDW
	IdFcvtDWu
	IdFcvtHD
	IdFcvtHL
	IdFcvtHLu
	IdFcvtHS
	IdFcvtHW
	IdFcvtHWu
	IdFcvtLD
	IdFcvtLH
	IdFcvtLS
	IdFcvtLuD
	IdFcvtLuH
	IdFcvtLuS
	IdFcvtSBf16
	IdFcvtSD
	IdFcvtSH
	IdFcvtSL
	IdFcvtSLu
	IdFcvtSW
	IdFcvtSWu
	IdFcvtWD
	IdFcvtWH
	IdFcvtWS
	IdFcvtWuD
	IdFcvtWuH
	IdFcvtWuS
	IdFcvtmodWD
	IdFdivD
	IdFdivH
	IdFdivS
	IdFence
	IdFenceI
	IdFenceTso
	IdFeqD
	IdFeqH
	IdFeqS
	IdFld
	IdFleD
	IdFleH
	IdFleS
	IdFleqD
	IdFleqH
	IdFleqS
	IdFlh
	IdFliD
	IdFliH
	IdFliS
	IdFltD
	IdFltH
	IdFltS
	IdFltqD
	IdFltqH
	IdFltqS
	IdFlw
	IdFmaddD
	IdFmaddH
	IdFmaddS
	IdFmaxD
	IdFmaxH
	IdFmaxS
	IdFmaxmD
	IdFmaxmH
	IdFmaxmS
	IdFminD
	IdFminH
	IdFminS
	IdFminmD
	IdFminmH
	IdFminmS
	IdFmsubD
	IdFmsubH
	IdFmsubS
	IdFmulD
	IdFmulH
	IdFmulS
	IdFmvDX
	IdFmvHX
	IdFmvWX
	IdFmvXD
	IdFmvXH
	IdFmvXW
	IdFmvhXD
	IdFmvpDX
	IdFnmaddD
	IdFnmaddH
	IdFnmaddS
	IdFnmsubD
	IdFnmsubH
	IdFnmsubS
	IdFroundD
	IdFroundH
	IdFroundS
	IdFroundnxD
	IdFroundnxH
	IdFroundnxS
	IdFsd
	IdFsgnjD
	IdFsgnjH
	IdFsgnjS
	IdFsgnjnD
	IdFsgnjnH
	IdFsgnjnS
	IdFsgnjxD
	IdFsgnjxH
	IdFsgnjxS
	IdFsh
	IdFsqrtD
	IdFsqrtH
	IdFsqrtS
	IdFsubD
	IdFsubH
	IdFsubS
	IdFsw
	IdHfenceGvma
	IdHfenceVvma
	IdHinvalGvma
	IdHinvalVvma
	IdHlvB
	IdHlvBu
	IdHlvD
	IdHlvH
	IdHlvHu
	IdHlvW
	IdHlvWu
	IdHlvxHu
	IdHlvxWu
	IdHsvB
	IdHsvD
	IdHsvH
	IdHsvW
	IdJal
	IdJalr
	IdLb
	IdLbu
	IdLd
	IdLh
	IdLhu
	IdLrD
	IdLrW
	IdLui
	IdLw
	IdLwu
	IdMax
	IdMaxu
	IdMin
	IdMinu
	IdMnret
	IdMopR
	IdMopRr
	IdMret
	IdMul
	IdMulh
	IdMulhsu
	IdMulhu
	IdMulw
	IdOr
	IdOrcB
	IdOri
	IdOrn
	IdPack
	IdPackh
	IdPackw
	IdPause
	IdRem
	IdRemu
	IdRemuw
	IdRemw
	IdRev8_32
	IdRev8_64
	IdRol
	IdRolw
	IdRor
	IdRori
	IdRoriw
	IdRorw
	IdSb
	IdScD
	IdScW
	IdSd
	IdSextB
	IdSextH
	IdSfenceInvalIr
	IdSfenceVma
	IdSfenceWInval
	IdSh
	IdSh1add
	IdSh1addUw
	IdSh2add
	IdSh2addUw
	IdSh3add
	IdSh3addUw
	IdSha256sig0
	IdSha256sig1
	IdSha256sum0
	IdSha256sum1
	IdSha512sig0
	IdSha512sig0h
	IdSha512sig0l
	IdSha512sig1
	IdSha512sig1h
	IdSha512sig1l
	IdSha512sum0
	IdSha512sum0r
	IdSha512sum1
	IdSha512sum1r
	IdSinvalVma
	IdSll
	IdSlli
	IdSlliUw
	IdSlliw
	IdSllw
	IdSlt
	IdSlti
	IdSltiu
	IdSltu
	IdSm3p0
	IdSm3p1
	IdSm4ed
	IdSm4ks
	IdSra
	IdSrai
	IdSraiw
	IdSraw
	IdSret
	IdSrl
	IdSrli
	IdSrliw
	IdSrlw
	IdSub
	IdSubw
	IdSw
	IdUnzip
	IdVaaddVv
	IdVaaddVx
	IdVaadduVv
	IdVaadduVx
	IdVadcVim
	IdVadcVvm
	IdVadcVxm
	IdVaddVi
	IdVaddVv
	IdVaddVx
	IdVaesdfVs
	IdVaesdfVv
	IdVaesdmVs
	IdVaesdmVv
	IdVaesefVs
	IdVaesefVv
	IdVaesemVs
	IdVaesemVv
	IdVaeskf1Vi
	IdVaeskf2Vi
	IdVaeszVs
	IdVandVi
	IdVandVv
	IdVandVx
	IdVandnVv
	IdVandnVx
	IdVasubVv
	IdVasubVx
	IdVasubuVv
	IdVasubuVx
	IdVbrev8V
	IdVbrevV
	IdVclmulVv
	IdVclmulVx
	IdVclmulhVv
	IdVclmulhVx
	IdVclzV
	IdVcompressVm
	IdVcpopM
	IdVcpopV
	IdVctzV
	IdVdivVv
	IdVdivVx
	IdVdivuVv
	IdVdivuVx
	IdVfaddVf
	IdVfaddVv
	IdVfclassV
	IdVfcvtFXV
	IdVfcvtFXuV
	IdVfcvtRtzXFV
	IdVfcvtRtzXuFV
	IdVfcvtXFV
	IdVfcvtXuFV
	IdVfdivVf
	IdVfdivVv
	IdVfirstM
	IdVfmaccVf
	IdVfmaccVv
	IdVfmaddVf
	IdVfmaddVv
	IdVfmaxVf
	IdVfmaxVv
	IdVfmergeVfm
	IdVfminVf
	IdVfminVv
	IdVfmsacVf
	IdVfmsacVv
	IdVfmsubVf
	IdVfmsubVv
	IdVfmulVf
	IdVfmulVv
	IdVfmvFS
	IdVfmvSF
	IdVfmvVF
	IdVfncvtFFW
	IdVfncvtFXW
	IdVfncvtFXuW
	IdVfncvtRodFFW
	IdVfncvtRtzXFW
	IdVfncvtRtzXuFW
	IdVfncvtXFW
	IdVfncvtXuFW
	IdVfncvtbf16FFW
	IdVfnmaccVf
	IdVfnmaccVv
	IdVfnmaddVf
	IdVfnmaddVv
	IdVfnmsacVf
	IdVfnmsacVv
	IdVfnmsubVf
	IdVfnmsubVv
	IdVfrdivVf
	IdVfrec7V
	IdVfredmaxVs
	IdVfredminVs
	IdVfredosumVs
	IdVfredusumVs
	IdVfrsqrt7V
	IdVfrsubVf
	IdVfsgnjVf
	IdVfsgnjVv
	IdVfsgnjnVf
	IdVfsgnjnVv
	IdVfsgnjxVf
	IdVfsgnjxVv
	IdVfslide1downVf
	IdVfslide1upVf
	IdVfsqrtV
	IdVfsubVf
	IdVfsubVv
	IdVfwaddVf
	IdVfwaddVv
	IdVfwaddWf
	IdVfwaddWv
	IdVfwcvtFFV
	IdVfwcvtFXV
	IdVfwcvtFXuV
	IdVfwcvtRtzXFV
	IdVfwcvtRtzXuFV
	IdVfwcvtXFV
	IdVfwcvtXuFV
	IdVfwcvtbf16FFV
	IdVfwmaccVf
	IdVfwmaccVv
	IdVfwmaccbf16Vf
	IdVfwmaccbf16Vv
	IdVfwmsacVf
	IdVfwmsacVv
	IdVfwmulVf
	IdVfwmulVv
	IdVfwnmaccVf
	IdVfwnmaccVv
	IdVfwnmsacVf
	IdVfwnmsacVv
	IdVfwredosumVs
	IdVfwredusumVs
	IdVfwsubVf
	IdVfwsubVv
	IdVfwsubWf
	IdVfwsubWv
	IdVghshVv
	IdVgmulVv
	IdVidV
	IdViotaM
	IdVle1024V
	IdVle1024ffV
	IdVle128V
	IdVle128ffV
	IdVle16V
	IdVle16ffV
	IdVle256V
	IdVle256ffV
	IdVle32V
	IdVle32ffV
	IdVle512V
	IdVle512ffV
	IdVle64V
	IdVle64ffV
	IdVle8V
	IdVle8ffV
	IdVlmV
	IdVloxei1024V
	IdVloxei128V
	IdVloxei16V
	IdVloxei256V
	IdVloxei32V
	IdVloxei512V
	IdVloxei64V
	IdVloxei8V
	IdVloxsegei1024V
	IdVloxsegei128V
	IdVloxsegei16V
	IdVloxsegei256V
	IdVloxsegei32V
	IdVloxsegei512V
	IdVloxsegei64V
	IdVloxsegei8V
	IdVlre1024V
	IdVlre128V
	IdVlre16V
	IdVlre256V
	IdVlre32V
	IdVlre512V
	IdVlre64V
	IdVlre8V
	IdVlse1024V
	IdVlse128V
	IdVlse16V
	IdVlse256V
	IdVlse32V
	IdVlse512V
	IdVlse64V
	IdVlse8V
	IdVlsege1024V
	IdVlsege1024ffV
	IdVlsege128V
	IdVlsege128ffV
	IdVlsege16V
	IdVlsege16ffV
	IdVlsege256V
	IdVlsege256ffV
	IdVlsege32V
	IdVlsege32ffV
	IdVlsege512V
	IdVlsege512ffV
	IdVlsege64V
	IdVlsege64ffV
	IdVlsege8V
	IdVlsege8ffV
	IdVlssege1024V
	IdVlssege128V
	IdVlssege16V
	IdVlssege256V
	IdVlssege32V
	IdVlssege512V
	IdVlssege64V
	IdVlssege8V
	IdVluxei1024V
	IdVluxei128V
	IdVluxei16V
	IdVluxei256V
	IdVluxei32V
	IdVluxei512V
	IdVluxei64V
	IdVluxei8V
	IdVluxsegei1024V
	IdVluxsegei128V
	IdVluxsegei16V
	IdVluxsegei256V
	IdVluxsegei32V
	IdVluxsegei512V
	IdVluxsegei64V
	IdVluxsegei8V
	IdVmaccVv
	IdVmaccVx
	IdVmadcVim
	IdVmadcVvm
	IdVmadcVxm
	IdVmaddVv
	IdVmaddVx
	IdVmandMm
	IdVmandnMm
	IdVmaxVv
	IdVmaxVx
	IdVmaxuVv
	IdVmaxuVx
	IdVmergeVim
	IdVmergeVvm
	IdVmergeVxm
	IdVmfeqVf
	IdVmfeqVv
	IdVmfgeVf
	IdVmfgtVf
	IdVmfleVf
	IdVmfleVv
	IdVmfltVf
	IdVmfltVv
	IdVmfneVf
	IdVmfneVv
	IdVminVv
	IdVminVx
	IdVminuVv
	IdVminuVx
	IdVmnandMm
	IdVmnorMm
	IdVmorMm
	IdVmornMm
	IdVmsbcVvm
	IdVmsbcVxm
	IdVmsbfM
	IdVmseqVi
	IdVmseqVv
	IdVmseqVx
	IdVmsgtVi
	IdVmsgtVx
	IdVmsgtuVi
	IdVmsgtuVx
	IdVmsifM
	IdVmsleVi
	IdVmsleVv
	IdVmsleVx
	IdVmsleuVi
	IdVmsleuVv
	IdVmsleuVx
	IdVmsltVv
	IdVmsltVx
	IdVmsltuVv
	IdVmsltuVx
	IdVmsneVi
	IdVmsneVv
	IdVmsneVx
	IdVmsofM
	IdVmulVv
	IdVmulVx
	IdVmulhVv
	IdVmulhVx
	IdVmulhsuVv
	IdVmulhsuVx
	IdVmulhuVv
	IdVmulhuVx
	IdVmv1rV
	IdVmv2rV
	IdVmv4rV
	IdVmv8rV
	IdVmvSX
	IdVmvVI
	IdVmvVV
	IdVmvVX
	IdVmvXS
	IdVmxnorMm
	IdVmxorMm
	IdVnclipWi
	IdVnclipWv
	IdVnclipWx
	IdVnclipuWi
	IdVnclipuWv
	IdVnclipuWx
	IdVnmsacVv
	IdVnmsacVx
	IdVnmsubVv
	IdVnmsubVx
	IdVnsraWi
	IdVnsraWv
	IdVnsraWx
	IdVnsrlWi
	IdVnsrlWv
	IdVnsrlWx
	IdVorVi
	IdVorVv
	IdVorVx
	IdVqdotVv
	IdVqdotVx
	IdVqdotsuVv
	IdVqdotsuVx
	IdVqdotuVv
	IdVqdotuVx
	IdVqdotusVx
	IdVredandVs
	IdVredmaxVs
	IdVredmaxuVs
	IdVredminVs
	IdVredminuVs
	IdVredorVs
	IdVredsumVs
	IdVredxorVs
	IdVremVv
	IdVremVx
	IdVremuVv
	IdVremuVx
	IdVrev8V
	IdVrgatherVi
	IdVrgatherVv
	IdVrgatherVx
	IdVrgatherei16Vv
	IdVrolVv
	IdVrolVx
	IdVrorVi
	IdVrorVv
	IdVrorVx
	IdVrsubVi
	IdVrsubVx
	IdVs1rV
	IdVs2rV
	IdVs4rV
	IdVs8rV
	IdVsaddVi
	IdVsaddVv
	IdVsaddVx
	IdVsadduVi
	IdVsadduVv
	IdVsadduVx
	IdVsbcVvm
	IdVsbcVxm
	IdVse1024V
	IdVse128V
	IdVse16V
	IdVse256V
	IdVse32V
	IdVse512V
	IdVse64V
	IdVse8V
	IdVsetivli
	IdVsetvl
	IdVsetvli
	IdVsextVf2
	IdVsextVf4
	IdVsextVf8
	IdVsha2chVv
	IdVsha2clVv
	IdVsha2msVv
	IdVslide1downVx
	IdVslide1upVx
	IdVslidedownVi
	IdVslidedownVx
	IdVslideupVi
	IdVslideupVx
	IdVsllVi
	IdVsllVv
	IdVsllVx
	IdVsm3cVi
	IdVsm3meVv
	IdVsm4kVi
	IdVsm4rVs
	IdVsm4rVv
	IdVsmV
	IdVsmulVv
	IdVsmulVx
	IdVsoxei1024V
	IdVsoxei128V
	IdVsoxei16V
	IdVsoxei256V
	IdVsoxei32V
	IdVsoxei512V
	IdVsoxei64V
	IdVsoxei8V
	IdVsoxsegei1024V
	IdVsoxsegei128V
	IdVsoxsegei16V
	IdVsoxsegei256V
	IdVsoxsegei32V
	IdVsoxsegei512V
	IdVsoxsegei64V
	IdVsoxsegei8V
	IdVsraVi
	IdVsraVv
	IdVsraVx
	IdVsrlVi
	IdVsrlVv
	IdVsrlVx
	IdVsse1024V
	IdVsse128V
	IdVsse16V
	IdVsse256V
	IdVsse32V
	IdVsse512V
	IdVsse64V
	IdVsse8V
	IdVssege1024V
	IdVssege128V
	IdVssege16V
	IdVssege256V
	IdVssege32V
	IdVssege512V
	IdVssege64V
	IdVssege8V
	IdVssraVi
	IdVssraVv
	IdVssraVx
	IdVssrlVi
	IdVssrlVv
	IdVssrlVx
	IdVsssege1024V
	IdVsssege128V
	IdVsssege16V
	IdVsssege256V
	IdVsssege32V
	IdVsssege512V
	IdVsssege64V
	IdVsssege8V
	IdVssubVv
	IdVssubVx
	IdVssubuVv
	IdVssubuVx
	IdVsubVv
	IdVsubVx
	IdVsuxei1024V
	IdVsuxei128V
	IdVsuxei16V
	IdVsuxei256V
	IdVsuxei32V
	IdVsuxei512V
	IdVsuxei64V
	IdVsuxei8V
	IdVsuxsegei1024V
	IdVsuxsegei128V
	IdVsuxsegei16V
	IdVsuxsegei256V
	IdVsuxsegei32V
	IdVsuxsegei512V
	IdVsuxsegei64V
	IdVsuxsegei8V
	IdVwaddVv
	IdVwaddVx
	IdVwaddWv
	IdVwaddWx
	IdVwadduVv
	IdVwadduVx
	IdVwadduWv
	IdVwadduWx
	IdVwmaccVv
	IdVwmaccVx
	IdVwmaccsuVv
	IdVwmaccsuVx
	IdVwmaccuVv
	IdVwmaccuVx
	IdVwmaccusVx
	IdVwmulVv
	IdVwmulVx
	IdVwmulsuVv
	IdVwmulsuVx
	IdVwmuluVv
	IdVwmuluVx
	IdVwredsumVs
	IdVwredsumuVs
	IdVwsllVi
	IdVwsllVv
	IdVwsllVx
	IdVwsubVv
	IdVwsubVx
	IdVwsubWv
	IdVwsubWx
	IdVwsubuVv
	IdVwsubuVx
	IdVwsubuWv
	IdVwsubuWx
	IdVxorVi
	IdVxorVv
	IdVxorVx
	IdVzextVf2
	IdVzextVf4
	IdVzextVf8
	IdWfi
	IdWrsNto
	IdWrsSto
	IdXnor
	IdXor
	IdXori
	IdXpermB
	IdXpermN
	IdZip
	instIdCount // number of instruction ids
)

// instNames maps an InstId to its assembler mnemonic.
var instNames = [instIdCount]string{
	IdIllegal: "illegal",
	IdAdd: "add",
	IdAddUw: "add.uw",
	IdAddi: "addi",
	IdAddiw: "addiw",
	IdAddw: "addw",
	IdAes32dsi: "aes32dsi",
	IdAes32dsmi: "aes32dsmi",
	IdAes32esi: "aes32esi",
	IdAes32esmi: "aes32esmi",
	IdAes64ds: "aes64ds",
	IdAes64dsm: "aes64dsm",
	IdAes64es: "aes64es",
	IdAes64esm: "aes64esm",
	IdAes64im: "aes64im",
	IdAes64ks1i: "aes64ks1i",
	IdAes64ks2: "aes64ks2",
	IdAmoaddD: "amoadd.d",
	IdAmoaddW: "amoadd.w",
	IdAmoandD: "amoand.d",
	IdAmoandW: "amoand.w",
	IdAmocasD: "amocas.d",
	IdAmocasQ: "amocas.q",
	IdAmocasW: "amocas.w",
	IdAmomaxD: "amomax.d",
	IdAmomaxW: "amomax.w",
	IdAmomaxuD: "amomaxu.d",
	IdAmomaxuW: "amomaxu.w",
	IdAmominD: "amomin.d",
	IdAmominW: "amomin.w",
	IdAmominuD: "amominu.d",
	IdAmominuW: "amominu.w",
	IdAmoorD: "amoor.d",
	IdAmoorW: "amoor.w",
	IdAmoswapD: "amoswap.d",
	IdAmoswapW: "amoswap.w",
	IdAmoxorD: "amoxor.d",
	IdAmoxorW: "amoxor.w",
	IdAnd: "and",
	IdAndi: "andi",
	IdAndn: "andn",
	IdAuipc: "auipc",
	IdBclr: "bclr",
	IdBclri: "bclri",
	IdBeq: "beq",
	IdBext: "bext",
	IdBexti: "bexti",
	IdBge: "bge",
	IdBgeu: "bgeu",
	IdBinv: "binv",
	IdBinvi: "binvi",
	IdBlt: "blt",
	IdBltu: "bltu",
	IdBne: "bne",
	IdBrev8: "brev8",
	IdBset: "bset",
	IdBseti: "bseti",
	IdCAdd: "c.add",
	IdCAddi: "c.addi",
	IdCAddi16sp: "c.addi16sp",
	IdCAddi4spn: "c.addi4spn",
	IdCAddiw: "c.addiw",
	IdCAddw: "c.addw",
	IdCAnd: "c.and",
	IdCAndi: "c.andi",
	IdCBeqz: "c.beqz",
	IdCBnez: "c.bnez",
	IdCEbreak: "c.ebreak",
	IdCFld: "c.fld",
	IdCFldsp: "c.fldsp",
	IdCFlw: "c.flw",
	IdCFlwsp: "c.flwsp",
	IdCFsd: "c.fsd",
	IdCFsdsp: "c.fsdsp",
	IdCFsw: "c.fsw",
	IdCFswsp: "c.fswsp",
	IdCJ: "c.j",
	IdCJal: "c.jal",
	IdCJalr: "c.jalr",
	IdCJr: "c.jr",
	IdCLbu: "c.lbu",
	IdCLd: "c.ld",
	IdCLdsp: "c.ldsp",
	IdCLh: "c.lh",
	IdCLhu: "c.lhu",
	IdCLi: "c.li",
	IdCLui: "c.lui",
	IdCLw: "c.lw",
	IdCLwsp: "c.lwsp",
	IdCMop: "c.mop",
	IdCMul: "c.mul",
	IdCMv: "c.mv",
	IdCNot: "c.not",
	IdCOr: "c.or",
	IdCSb: "c.sb",
	IdCSd: "c.sd",
	IdCSdsp: "c.sdsp",
	IdCSextB: "c.sext.b",
	IdCSextH: "c.sext.h",
	IdCSh: "c.sh",
	IdCSlli: "c.slli",
	IdCSrai: "c.srai",
	IdCSrli: "c.srli",
	IdCSub: "c.sub",
	IdCSubw: "c.subw",
	IdCSw: "c.sw",
	IdCSwsp: "c.swsp",
	IdCXor: "c.xor",
	IdCZextB: "c.zext.b",
	IdCZextH: "c.zext.h",
	IdCZextW: "c.zext.w",
	IdCboClean: "cbo.clean",
	IdCboFlush: "cbo.flush",
	IdCboInval: "cbo.inval",
	IdCboZero: "cbo.zero",
	IdClmul: "clmul",
	IdClmulh: "clmulh",
	IdClmulr: "clmulr",
	IdClz: "clz",
	IdClzw: "clzw",
	IdCpop: "cpop",
	IdCpopw: "cpopw",
	IdCsrrc: "csrrc",
	IdCsrrci: "csrrci",
	IdCsrrs: "csrrs",
	IdCsrrsi: "csrrsi",
	IdCsrrw: "csrrw",
	IdCsrrwi: "csrrwi",
	IdCtz: "ctz",
	IdCtzw: "ctzw",
	IdCzeroEqz: "czero.eqz",
	IdCzeroNez: "czero.nez",
	IdDiv: "div",
	IdDivu: "divu",
	IdDivuw: "divuw",
	IdDivw: "divw",
	IdDret: "dret",
	IdEbreak: "ebreak",
	IdEcall: "ecall",
	IdFaddD: "fadd.d",
	IdFaddH: "fadd.h",
	IdFaddS: "fadd.s",
	IdFclassD: "fclass.d",
	IdFclassH: "fclass.h",
	IdFclassS: "fclass.s",
	IdFcvtBf16S: "fcvt.bf16.s",
	IdFcvtDH: "fcvt.d.h",
	IdFcvtDL: "fcvt.d.l",
	IdFcvtDLu: "fcvt.d.lu",
	IdFcvtDS: "fcvt.d.s",
	IdFcvtDW: "fcvt.d.w",
	IdFcvtDWu: "fcvt.d.wu",
	IdFcvtHD: "fcvt.h.d",
	IdFcvtHL: "fcvt.h.l",
	IdFcvtHLu: "fcvt.h.lu",
	IdFcvtHS: "fcvt.h.s",
	IdFcvtHW: "fcvt.h.w",
	IdFcvtHWu: "fcvt.h.wu",
	IdFcvtLD: "fcvt.l.d",
	IdFcvtLH: "fcvt.l.h",
	IdFcvtLS: "fcvt.l.s",
	IdFcvtLuD: "fcvt.lu.d",
	IdFcvtLuH: "fcvt.lu.h",
	IdFcvtLuS: "fcvt.lu.s",
	IdFcvtSBf16: "fcvt.s.bf16",
	IdFcvtSD: "fcvt.s.d",
	IdFcvtSH: "fcvt.s.h",
	IdFcvtSL: "fcvt.s.l",
	IdFcvtSLu: "fcvt.s.lu",
	IdFcvtSW: "fcvt.s.w",
	IdFcvtSWu: "fcvt.s.wu",
	IdFcvtWD: "fcvt.w.d",
	IdFcvtWH: "fcvt.w.h",
	IdFcvtWS: "fcvt.w.s",
	IdFcvtWuD: "fcvt.wu.d",
	IdFcvtWuH: "fcvt.wu.h",
	IdFcvtWuS: "fcvt.wu.s",
	IdFcvtmodWD: "fcvtmod.w.d",
	IdFdivD: "fdiv.d",
	IdFdivH: "fdiv.h",
	IdFdivS: "fdiv.s",
	IdFence: "fence",
	IdFenceI: "fence.i",
	IdFenceTso: "fence.tso",
	IdFeqD: "feq.d",
	IdFeqH: "feq.h",
	IdFeqS: "feq.s",
	IdFld: "fld",
	IdFleD: "fle.d",
	IdFleH: "fle.h",
	IdFleS: "fle.s",
	IdFleqD: "fleq.d",
	IdFleqH: "fleq.h",
	IdFleqS: "fleq.s",
	IdFlh: "flh",
	IdFliD: "fli.d",
	IdFliH: "fli.h",
	IdFliS: "fli.s",
	IdFltD: "flt.d",
	IdFltH: "flt.h",
	IdFltS: "flt.s",
	IdFltqD: "fltq.d",
	IdFltqH: "fltq.h",
	IdFltqS: "fltq.s",
	IdFlw: "flw",
	IdFmaddD: "fmadd.d",
	IdFmaddH: "fmadd.h",
	IdFmaddS: "fmadd.s",
	IdFmaxD: "fmax.d",
	IdFmaxH: "fmax.h",
	IdFmaxS: "fmax.s",
	IdFmaxmD: "fmaxm.d",
	IdFmaxmH: "fmaxm.h",
	IdFmaxmS: "fmaxm.s",
	IdFminD: "fmin.d",
	IdFminH: "fmin.h",
	IdFminS: "fmin.s",
	IdFminmD: "fminm.d",
	IdFminmH: "fminm.h",
	IdFminmS: "fminm.s",
	IdFmsubD: "fmsub.d",
	IdFmsubH: "fmsub.h",
	IdFmsubS: "fmsub.s",
	IdFmulD: "fmul.d",
	IdFmulH: "fmul.h",
	IdFmulS: "fmul.s",
	IdFmvDX: "fmv.d.x",
	IdFmvHX: "fmv.h.x",
	IdFmvWX: "fmv.w.x",
	IdFmvXD: "fmv.x.d",
	IdFmvXH: "fmv.x.h",
	IdFmvXW: "fmv.x.w",
	IdFmvhXD: "fmvh.x.d",
	IdFmvpDX: "fmvp.d.x",
	IdFnmaddD: "fnmadd.d",
	IdFnmaddH: "fnmadd.h",
	IdFnmaddS: "fnmadd.s",
	IdFnmsubD: "fnmsub.d",
	IdFnmsubH: "fnmsub.h",
	IdFnmsubS: "fnmsub.s",
	IdFroundD: "fround.d",
	IdFroundH: "fround.h",
	IdFroundS: "fround.s",
	IdFroundnxD: "froundnx.d",
	IdFroundnxH: "froundnx.h",
	IdFroundnxS: "froundnx.s",
	IdFsd: "fsd",
	IdFsgnjD: "fsgnj.d",
	IdFsgnjH: "fsgnj.h",
	IdFsgnjS: "fsgnj.s",
	IdFsgnjnD: "fsgnjn.d",
	IdFsgnjnH: "fsgnjn.h",
	IdFsgnjnS: "fsgnjn.s",
	IdFsgnjxD: "fsgnjx.d",
	IdFsgnjxH: "fsgnjx.h",
	IdFsgnjxS: "fsgnjx.s",
	IdFsh: "fsh",
	IdFsqrtD: "fsqrt.d",
	IdFsqrtH: "fsqrt.h",
	IdFsqrtS: "fsqrt.s",
	IdFsubD: "fsub.d",
	IdFsubH: "fsub.h",
	IdFsubS: "fsub.s",
	IdFsw: "fsw",
	IdHfenceGvma: "hfence.gvma",
	IdHfenceVvma: "hfence.vvma",
	IdHinvalGvma: "hinval.gvma",
	IdHinvalVvma: "hinval.vvma",
	IdHlvB: "hlv.b",
	IdHlvBu: "hlv.bu",
	IdHlvD: "hlv.d",
	IdHlvH: "hlv.h",
	IdHlvHu: "hlv.hu",
	IdHlvW: "hlv.w",
	IdHlvWu: "hlv.wu",
	IdHlvxHu: "hlvx.hu",
	IdHlvxWu: "hlvx.wu",
	IdHsvB: "hsv.b",
	IdHsvD: "hsv.d",
	IdHsvH: "hsv.h",
	IdHsvW: "hsv.w",
	IdJal: "jal",
	IdJalr: "jalr",
	IdLb: "lb",
	IdLbu: "lbu",
	IdLd: "ld",
	IdLh: "lh",
	IdLhu: "lhu",
	IdLrD: "lr.d",
	IdLrW: "lr.w",
	IdLui: "lui",
	IdLw: "lw",
	IdLwu: "lwu",
	IdMax: "max",
	IdMaxu: "maxu",
	IdMin: "min",
	IdMinu: "minu",
	IdMnret: "mnret",
	IdMopR: "mop.r",
	IdMopRr: "mop.rr",
	IdMret: "mret",
	IdMul: "mul",
	IdMulh: "mulh",
	IdMulhsu: "mulhsu",
	IdMulhu: "mulhu",
	IdMulw: "mulw",
	IdOr: "or",
	IdOrcB: "orc.b",
	IdOri: "ori",
	IdOrn: "orn",
	IdPack: "pack",
	IdPackh: "packh",
	IdPackw: "packw",
	IdPause: "pause",
	IdRem: "rem",
	IdRemu: "remu",
	IdRemuw: "remuw",
	IdRemw: "remw",
	IdRev8_32: "rev8",
	IdRev8_64: "rev8",
	IdRol: "rol",
	IdRolw: "rolw",
	IdRor: "ror",
	IdRori: "rori",
	IdRoriw: "roriw",
	IdRorw: "rorw",
	IdSb: "sb",
	IdScD: "sc.d",
	IdScW: "sc.w",
	IdSd: "sd",
	IdSextB: "sext.b",
	IdSextH: "sext.h",
	IdSfenceInvalIr: "sfence.inval.ir",
	IdSfenceVma: "sfence.vma",
	IdSfenceWInval: "sfence.w.inval",
	IdSh: "sh",
	IdSh1add: "sh1add",
	IdSh1addUw: "sh1add.uw",
	IdSh2add: "sh2add",
	IdSh2addUw: "sh2add.uw",
	IdSh3add: "sh3add",
	IdSh3addUw: "sh3add.uw",
	IdSha256sig0: "sha256sig0",
	IdSha256sig1: "sha256sig1",
	IdSha256sum0: "sha256sum0",
	IdSha256sum1: "sha256sum1",
	IdSha512sig0: "sha512sig0",
	IdSha512sig0h: "sha512sig0h",
	IdSha512sig0l: "sha512sig0l",
	IdSha512sig1: "sha512sig1",
	IdSha512sig1h: "sha512sig1h",
	IdSha512sig1l: "sha512sig1l",
	IdSha512sum0: "sha512sum0",
	IdSha512sum0r: "sha512sum0r",
	IdSha512sum1: "sha512sum1",
	IdSha512sum1r: "sha512sum1r",
	IdSinvalVma: "sinval.vma",
	IdSll: "sll",
	IdSlli: "slli",
	IdSlliUw: "slli.uw",
	IdSlliw: "slliw",
	IdSllw: "sllw",
	IdSlt: "slt",
	IdSlti: "slti",
	IdSltiu: "sltiu",
	IdSltu: "sltu",
	IdSm3p0: "sm3p0",
	IdSm3p1: "sm3p1",
	IdSm4ed: "sm4ed",
	IdSm4ks: "sm4ks",
	IdSra: "sra",
	IdSrai: "srai",
	IdSraiw: "sraiw",
	IdSraw: "sraw",
	IdSret: "sret",
	IdSrl: "srl",
	IdSrli: "srli",
	IdSrliw: "srliw",
	IdSrlw: "srlw",
	IdSub: "sub",
	IdSubw: "subw",
	IdSw: "sw",
	IdUnzip: "unzip",
	IdVaaddVv: "vaadd.vv",
	IdVaaddVx: "vaadd.vx",
	IdVaadduVv: "vaaddu.vv",
	IdVaadduVx: "vaaddu.vx",
	IdVadcVim: "vadc.vim",
	IdVadcVvm: "vadc.vvm",
	IdVadcVxm: "vadc.vxm",
	IdVaddVi: "vadd.vi",
	IdVaddVv: "vadd.vv",
	IdVaddVx: "vadd.vx",
	IdVaesdfVs: "vaesdf.vs",
	IdVaesdfVv: "vaesdf.vv",
	IdVaesdmVs: "vaesdm.vs",
	IdVaesdmVv: "vaesdm.vv",
	IdVaesefVs: "vaesef.vs",
	IdVaesefVv: "vaesef.vv",
	IdVaesemVs: "vaesem.vs",
	IdVaesemVv: "vaesem.vv",
	IdVaeskf1Vi: "vaeskf1.vi",
	IdVaeskf2Vi: "vaeskf2.vi",
	IdVaeszVs: "vaesz.vs",
	IdVandVi: "vand.vi",
	IdVandVv: "vand.vv",
	IdVandVx: "vand.vx",
	IdVandnVv: "vandn.vv",
	IdVandnVx: "vandn.vx",
	IdVasubVv: "vasub.vv",
	IdVasubVx: "vasub.vx",
	IdVasubuVv: "vasubu.vv",
	IdVasubuVx: "vasubu.vx",
	IdVbrev8V: "vbrev8.v",
	IdVbrevV: "vbrev.v",
	IdVclmulVv: "vclmul.vv",
	IdVclmulVx: "vclmul.vx",
	IdVclmulhVv: "vclmulh.vv",
	IdVclmulhVx: "vclmulh.vx",
	IdVclzV: "vclz.v",
	IdVcompressVm: "vcompress.vm",
	IdVcpopM: "vcpop.m",
	IdVcpopV: "vcpop.v",
	IdVctzV: "vctz.v",
	IdVdivVv: "vdiv.vv",
	IdVdivVx: "vdiv.vx",
	IdVdivuVv: "vdivu.vv",
	IdVdivuVx: "vdivu.vx",
	IdVfaddVf: "vfadd.vf",
	IdVfaddVv: "vfadd.vv",
	IdVfclassV: "vfclass.v",
	IdVfcvtFXV: "vfcvt.f.x.v",
	IdVfcvtFXuV: "vfcvt.f.xu.v",
	IdVfcvtRtzXFV: "vfcvt.rtz.x.f.v",
	IdVfcvtRtzXuFV: "vfcvt.rtz.xu.f.v",
	IdVfcvtXFV: "vfcvt.x.f.v",
	IdVfcvtXuFV: "vfcvt.xu.f.v",
	IdVfdivVf: "vfdiv.vf",
	IdVfdivVv: "vfdiv.vv",
	IdVfirstM: "vfirst.m",
	IdVfmaccVf: "vfmacc.vf",
	IdVfmaccVv: "vfmacc.vv",
	IdVfmaddVf: "vfmadd.vf",
	IdVfmaddVv: "vfmadd.vv",
	IdVfmaxVf: "vfmax.vf",
	IdVfmaxVv: "vfmax.vv",
	IdVfmergeVfm: "vfmerge.vfm",
	IdVfminVf: "vfmin.vf",
	IdVfminVv: "vfmin.vv",
	IdVfmsacVf: "vfmsac.vf",
	IdVfmsacVv: "vfmsac.vv",
	IdVfmsubVf: "vfmsub.vf",
	IdVfmsubVv: "vfmsub.vv",
	IdVfmulVf: "vfmul.vf",
	IdVfmulVv: "vfmul.vv",
	IdVfmvFS: "vfmv.f.s",
	IdVfmvSF: "vfmv.s.f",
	IdVfmvVF: "vfmv.v.f",
	IdVfncvtFFW: "vfncvt.f.f.w",
	IdVfncvtFXW: "vfncvt.f.x.w",
	IdVfncvtFXuW: "vfncvt.f.xu.w",
	IdVfncvtRodFFW: "vfncvt.rod.f.f.w",
	IdVfncvtRtzXFW: "vfncvt.rtz.x.f.w",
	IdVfncvtRtzXuFW: "vfncvt.rtz.xu.f.w",
	IdVfncvtXFW: "vfncvt.x.f.w",
	IdVfncvtXuFW: "vfncvt.xu.f.w",
	IdVfncvtbf16FFW: "vfncvtbf16.f.f.w",
	IdVfnmaccVf: "vfnmacc.vf",
	IdVfnmaccVv: "vfnmacc.vv",
	IdVfnmaddVf: "vfnmadd.vf",
	IdVfnmaddVv: "vfnmadd.vv",
	IdVfnmsacVf: "vfnmsac.vf",
	IdVfnmsacVv: "vfnmsac.vv",
	IdVfnmsubVf: "vfnmsub.vf",
	IdVfnmsubVv: "vfnmsub.vv",
	IdVfrdivVf: "vfrdiv.vf",
	IdVfrec7V: "vfrec7.v",
	IdVfredmaxVs: "vfredmax.vs",
	IdVfredminVs: "vfredmin.vs",
	IdVfredosumVs: "vfredosum.vs",
	IdVfredusumVs: "vfredusum.vs",
	IdVfrsqrt7V: "vfrsqrt7.v",
	IdVfrsubVf: "vfrsub.vf",
	IdVfsgnjVf: "vfsgnj.vf",
	IdVfsgnjVv: "vfsgnj.vv",
	IdVfsgnjnVf: "vfsgnjn.vf",
	IdVfsgnjnVv: "vfsgnjn.vv",
	IdVfsgnjxVf: "vfsgnjx.vf",
	IdVfsgnjxVv: "vfsgnjx.vv",
	IdVfslide1downVf: "vfslide1down.vf",
	IdVfslide1upVf: "vfslide1up.vf",
	IdVfsqrtV: "vfsqrt.v",
	IdVfsubVf: "vfsub.vf",
	IdVfsubVv: "vfsub.vv",
	IdVfwaddVf: "vfwadd.vf",
	IdVfwaddVv: "vfwadd.vv",
	IdVfwaddWf: "vfwadd.wf",
	IdVfwaddWv: "vfwadd.wv",
	IdVfwcvtFFV: "vfwcvt.f.f.v",
	IdVfwcvtFXV: "vfwcvt.f.x.v",
	IdVfwcvtFXuV: "vfwcvt.f.xu.v",
	IdVfwcvtRtzXFV: "vfwcvt.rtz.x.f.v",
	IdVfwcvtRtzXuFV: "vfwcvt.rtz.xu.f.v",
	IdVfwcvtXFV: "vfwcvt.x.f.v",
	IdVfwcvtXuFV: "vfwcvt.xu.f.v",
	IdVfwcvtbf16FFV: "vfwcvtbf16.f.f.v",
	IdVfwmaccVf: "vfwmacc.vf",
	IdVfwmaccVv: "vfwmacc.vv",
	IdVfwmaccbf16Vf: "vfwmaccbf16.vf",
	IdVfwmaccbf16Vv: "vfwmaccbf16.vv",
	IdVfwmsacVf: "vfwmsac.vf",
	IdVfwmsacVv: "vfwmsac.vv",
	IdVfwmulVf: "vfwmul.vf",
	IdVfwmulVv: "vfwmul.vv",
	IdVfwnmaccVf: "vfwnmacc.vf",
	IdVfwnmaccVv: "vfwnmacc.vv",
	IdVfwnmsacVf: "vfwnmsac.vf",
	IdVfwnmsacVv: "vfwnmsac.vv",
	IdVfwredosumVs: "vfwredosum.vs",
	IdVfwredusumVs: "vfwredusum.vs",
	IdVfwsubVf: "vfwsub.vf",
	IdVfwsubVv: "vfwsub.vv",
	IdVfwsubWf: "vfwsub.wf",
	IdVfwsubWv: "vfwsub.wv",
	IdVghshVv: "vghsh.vv",
	IdVgmulVv: "vgmul.vv",
	IdVidV: "vid.v",
	IdViotaM: "viota.m",
	IdVle1024V: "vle1024.v",
	IdVle1024ffV: "vle1024ff.v",
	IdVle128V: "vle128.v",
	IdVle128ffV: "vle128ff.v",
	IdVle16V: "vle16.v",
	IdVle16ffV: "vle16ff.v",
	IdVle256V: "vle256.v",
	IdVle256ffV: "vle256ff.v",
	IdVle32V: "vle32.v",
	IdVle32ffV: "vle32ff.v",
	IdVle512V: "vle512.v",
	IdVle512ffV: "vle512ff.v",
	IdVle64V: "vle64.v",
	IdVle64ffV: "vle64ff.v",
	IdVle8V: "vle8.v",
	IdVle8ffV: "vle8ff.v",
	IdVlmV: "vlm.v",
	IdVloxei1024V: "vloxei1024.v",
	IdVloxei128V: "vloxei128.v",
	IdVloxei16V: "vloxei16.v",
	IdVloxei256V: "vloxei256.v",
	IdVloxei32V: "vloxei32.v",
	IdVloxei512V: "vloxei512.v",
	IdVloxei64V: "vloxei64.v",
	IdVloxei8V: "vloxei8.v",
	IdVloxsegei1024V: "vloxsegei1024.v",
	IdVloxsegei128V: "vloxsegei128.v",
	IdVloxsegei16V: "vloxsegei16.v",
	IdVloxsegei256V: "vloxsegei256.v",
	IdVloxsegei32V: "vloxsegei32.v",
	IdVloxsegei512V: "vloxsegei512.v",
	IdVloxsegei64V: "vloxsegei64.v",
	IdVloxsegei8V: "vloxsegei8.v",
	IdVlre1024V: "vlre1024.v",
	IdVlre128V: "vlre128.v",
	IdVlre16V: "vlre16.v",
	IdVlre256V: "vlre256.v",
	IdVlre32V: "vlre32.v",
	IdVlre512V: "vlre512.v",
	IdVlre64V: "vlre64.v",
	IdVlre8V: "vlre8.v",
	IdVlse1024V: "vlse1024.v",
	IdVlse128V: "vlse128.v",
	IdVlse16V: "vlse16.v",
	IdVlse256V: "vlse256.v",
	IdVlse32V: "vlse32.v",
	IdVlse512V: "vlse512.v",
	IdVlse64V: "vlse64.v",
	IdVlse8V: "vlse8.v",
	IdVlsege1024V: "vlsege1024.v",
	IdVlsege1024ffV: "vlsege1024ff.v",
	IdVlsege128V: "vlsege128.v",
	IdVlsege128ffV: "vlsege128ff.v",
	IdVlsege16V: "vlsege16.v",
	IdVlsege16ffV: "vlsege16ff.v",
	IdVlsege256V: "vlsege256.v",
	IdVlsege256ffV: "vlsege256ff.v",
	IdVlsege32V: "vlsege32.v",
	IdVlsege32ffV: "vlsege32ff.v",
	IdVlsege512V: "vlsege512.v",
	IdVlsege512ffV: "vlsege512ff.v",
	IdVlsege64V: "vlsege64.v",
	IdVlsege64ffV: "vlsege64ff.v",
	IdVlsege8V: "vlsege8.v",
	IdVlsege8ffV: "vlsege8ff.v",
	IdVlssege1024V: "vlssege1024.v",
	IdVlssege128V: "vlssege128.v",
	IdVlssege16V: "vlssege16.v",
	IdVlssege256V: "vlssege256.v",
	IdVlssege32V: "vlssege32.v",
	IdVlssege512V: "vlssege512.v",
	IdVlssege64V: "vlssege64.v",
	IdVlssege8V: "vlssege8.v",
	IdVluxei1024V: "vluxei1024.v",
	IdVluxei128V: "vluxei128.v",
	IdVluxei16V: "vluxei16.v",
	IdVluxei256V: "vluxei256.v",
	IdVluxei32V: "vluxei32.v",
	IdVluxei512V: "vluxei512.v",
	IdVluxei64V: "vluxei64.v",
	IdVluxei8V: "vluxei8.v",
	IdVluxsegei1024V: "vluxsegei1024.v",
	IdVluxsegei128V: "vluxsegei128.v",
	IdVluxsegei16V: "vluxsegei16.v",
	IdVluxsegei256V: "vluxsegei256.v",
	IdVluxsegei32V: "vluxsegei32.v",
	IdVluxsegei512V: "vluxsegei512.v",
	IdVluxsegei64V: "vluxsegei64.v",
	IdVluxsegei8V: "vluxsegei8.v",
	IdVmaccVv: "vmacc.vv",
	IdVmaccVx: "vmacc.vx",
	IdVmadcVim: "vmadc.vim",
	IdVmadcVvm: "vmadc.vvm",
	IdVmadcVxm: "vmadc.vxm",
	IdVmaddVv: "vmadd.vv",
	IdVmaddVx: "vmadd.vx",
	IdVmandMm: "vmand.mm",
	IdVmandnMm: "vmandn.mm",
	IdVmaxVv: "vmax.vv",
	IdVmaxVx: "vmax.vx",
	IdVmaxuVv: "vmaxu.vv",
	IdVmaxuVx: "vmaxu.vx",
	IdVmergeVim: "vmerge.vim",
	IdVmergeVvm: "vmerge.vvm",
	IdVmergeVxm: "vmerge.vxm",
	IdVmfeqVf: "vmfeq.vf",
	IdVmfeqVv: "vmfeq.vv",
	IdVmfgeVf: "vmfge.vf",
	IdVmfgtVf: "vmfgt.vf",
	IdVmfleVf: "vmfle.vf",
	IdVmfleVv: "vmfle.vv",
	IdVmfltVf: "vmflt.vf",
	IdVmfltVv: "vmflt.vv",
	IdVmfneVf: "vmfne.vf",
	IdVmfneVv: "vmfne.vv",
	IdVminVv: "vmin.vv",
	IdVminVx: "vmin.vx",
	IdVminuVv: "vminu.vv",
	IdVminuVx: "vminu.vx",
	IdVmnandMm: "vmnand.mm",
	IdVmnorMm: "vmnor.mm",
	IdVmorMm: "vmor.mm",
	IdVmornMm: "vmorn.mm",
	IdVmsbcVvm: "vmsbc.vvm",
	IdVmsbcVxm: "vmsbc.vxm",
	IdVmsbfM: "vmsbf.m",
	IdVmseqVi: "vmseq.vi",
	IdVmseqVv: "vmseq.vv",
	IdVmseqVx: "vmseq.vx",
	IdVmsgtVi: "vmsgt.vi",
	IdVmsgtVx: "vmsgt.vx",
	IdVmsgtuVi: "vmsgtu.vi",
	IdVmsgtuVx: "vmsgtu.vx",
	IdVmsifM: "vmsif.m",
	IdVmsleVi: "vmsle.vi",
	IdVmsleVv: "vmsle.vv",
	IdVmsleVx: "vmsle.vx",
	IdVmsleuVi: "vmsleu.vi",
	IdVmsleuVv: "vmsleu.vv",
	IdVmsleuVx: "vmsleu.vx",
	IdVmsltVv: "vmslt.vv",
	IdVmsltVx: "vmslt.vx",
	IdVmsltuVv: "vmsltu.vv",
	IdVmsltuVx: "vmsltu.vx",
	IdVmsneVi: "vmsne.vi",
	IdVmsneVv: "vmsne.vv",
	IdVmsneVx: "vmsne.vx",
	IdVmsofM: "vmsof.m",
	IdVmulVv: "vmul.vv",
	IdVmulVx: "vmul.vx",
	IdVmulhVv: "vmulh.vv",
	IdVmulhVx: "vmulh.vx",
	IdVmulhsuVv: "vmulhsu.vv",
	IdVmulhsuVx: "vmulhsu.vx",
	IdVmulhuVv: "vmulhu.vv",
	IdVmulhuVx: "vmulhu.vx",
	IdVmv1rV: "vmv1r.v",
	IdVmv2rV: "vmv2r.v",
	IdVmv4rV: "vmv4r.v",
	IdVmv8rV: "vmv8r.v",
	IdVmvSX: "vmv.s.x",
	IdVmvVI: "vmv.v.i",
	IdVmvVV: "vmv.v.v",
	IdVmvVX: "vmv.v.x",
	IdVmvXS: "vmv.x.s",
	IdVmxnorMm: "vmxnor.mm",
	IdVmxorMm: "vmxor.mm",
	IdVnclipWi: "vnclip.wi",
	IdVnclipWv: "vnclip.wv",
	IdVnclipWx: "vnclip.wx",
	IdVnclipuWi: "vnclipu.wi",
	IdVnclipuWv: "vnclipu.wv",
	IdVnclipuWx: "vnclipu.wx",
	IdVnmsacVv: "vnmsac.vv",
	IdVnmsacVx: "vnmsac.vx",
	IdVnmsubVv: "vnmsub.vv",
	IdVnmsubVx: "vnmsub.vx",
	IdVnsraWi: "vnsra.wi",
	IdVnsraWv: "vnsra.wv",
	IdVnsraWx: "vnsra.wx",
	IdVnsrlWi: "vnsrl.wi",
	IdVnsrlWv: "vnsrl.wv",
	IdVnsrlWx: "vnsrl.wx",
	IdVorVi: "vor.vi",
	IdVorVv: "vor.vv",
	IdVorVx: "vor.vx",
	IdVqdotVv: "vqdot.vv",
	IdVqdotVx: "vqdot.vx",
	IdVqdotsuVv: "vqdotsu.vv",
	IdVqdotsuVx: "vqdotsu.vx",
	IdVqdotuVv: "vqdotu.vv",
	IdVqdotuVx: "vqdotu.vx",
	IdVqdotusVx: "vqdotus.vx",
	IdVredandVs: "vredand.vs",
	IdVredmaxVs: "vredmax.vs",
	IdVredmaxuVs: "vredmaxu.vs",
	IdVredminVs: "vredmin.vs",
	IdVredminuVs: "vredminu.vs",
	IdVredorVs: "vredor.vs",
	IdVredsumVs: "vredsum.vs",
	IdVredxorVs: "vredxor.vs",
	IdVremVv: "vrem.vv",
	IdVremVx: "vrem.vx",
	IdVremuVv: "vremu.vv",
	IdVremuVx: "vremu.vx",
	IdVrev8V: "vrev8.v",
	IdVrgatherVi: "vrgather.vi",
	IdVrgatherVv: "vrgather.vv",
	IdVrgatherVx: "vrgather.vx",
	IdVrgatherei16Vv: "vrgatherei16.vv",
	IdVrolVv: "vrol.vv",
	IdVrolVx: "vrol.vx",
	IdVrorVi: "vror.vi",
	IdVrorVv: "vror.vv",
	IdVrorVx: "vror.vx",
	IdVrsubVi: "vrsub.vi",
	IdVrsubVx: "vrsub.vx",
	IdVs1rV: "vs1r.v",
	IdVs2rV: "vs2r.v",
	IdVs4rV: "vs4r.v",
	IdVs8rV: "vs8r.v",
	IdVsaddVi: "vsadd.vi",
	IdVsaddVv: "vsadd.vv",
	IdVsaddVx: "vsadd.vx",
	IdVsadduVi: "vsaddu.vi",
	IdVsadduVv: "vsaddu.vv",
	IdVsadduVx: "vsaddu.vx",
	IdVsbcVvm: "vsbc.vvm",
	IdVsbcVxm: "vsbc.vxm",
	IdVse1024V: "vse1024.v",
	IdVse128V: "vse128.v",
	IdVse16V: "vse16.v",
	IdVse256V: "vse256.v",
	IdVse32V: "vse32.v",
	IdVse512V: "vse512.v",
	IdVse64V: "vse64.v",
	IdVse8V: "vse8.v",
	IdVsetivli: "vsetivli",
	IdVsetvl: "vsetvl",
	IdVsetvli: "vsetvli",
	IdVsextVf2: "vsext.vf2",
	IdVsextVf4: "vsext.vf4",
	IdVsextVf8: "vsext.vf8",
	IdVsha2chVv: "vsha2ch.vv",
	IdVsha2clVv: "vsha2cl.vv",
	IdVsha2msVv: "vsha2ms.vv",
	IdVslide1downVx: "vslide1down.vx",
	IdVslide1upVx: "vslide1up.vx",
	IdVslidedownVi: "vslidedown.vi",
	IdVslidedownVx: "vslidedown.vx",
	IdVslideupVi: "vslideup.vi",
	IdVslideupVx: "vslideup.vx",
	IdVsllVi: "vsll.vi",
	IdVsllVv: "vsll.vv",
	IdVsllVx: "vsll.vx",
	IdVsm3cVi: "vsm3c.vi",
	IdVsm3meVv: "vsm3me.vv",
	IdVsm4kVi: "vsm4k.vi",
	IdVsm4rVs: "vsm4r.vs",
	IdVsm4rVv: "vsm4r.vv",
	IdVsmV: "vsm.v",
	IdVsmulVv: "vsmul.vv",
	IdVsmulVx: "vsmul.vx",
	IdVsoxei1024V: "vsoxei1024.v",
	IdVsoxei128V: "vsoxei128.v",
	IdVsoxei16V: "vsoxei16.v",
	IdVsoxei256V: "vsoxei256.v",
	IdVsoxei32V: "vsoxei32.v",
	IdVsoxei512V: "vsoxei512.v",
	IdVsoxei64V: "vsoxei64.v",
	IdVsoxei8V: "vsoxei8.v",
	IdVsoxsegei1024V: "vsoxsegei1024.v",
	IdVsoxsegei128V: "vsoxsegei128.v",
	IdVsoxsegei16V: "vsoxsegei16.v",
	IdVsoxsegei256V: "vsoxsegei256.v",
	IdVsoxsegei32V: "vsoxsegei32.v",
	IdVsoxsegei512V: "vsoxsegei512.v",
	IdVsoxsegei64V: "vsoxsegei64.v",
	IdVsoxsegei8V: "vsoxsegei8.v",
	IdVsraVi: "vsra.vi",
	IdVsraVv: "vsra.vv",
	IdVsraVx: "vsra.vx",
	IdVsrlVi: "vsrl.vi",
	IdVsrlVv: "vsrl.vv",
	IdVsrlVx: "vsrl.vx",
	IdVsse1024V: "vsse1024.v",
	IdVsse128V: "vsse128.v",
	IdVsse16V: "vsse16.v",
	IdVsse256V: "vsse256.v",
	IdVsse32V: "vsse32.v",
	IdVsse512V: "vsse512.v",
	IdVsse64V: "vsse64.v",
	IdVsse8V: "vsse8.v",
	IdVssege1024V: "vssege1024.v",
	IdVssege128V: "vssege128.v",
	IdVssege16V: "vssege16.v",
	IdVssege256V: "vssege256.v",
	IdVssege32V: "vssege32.v",
	IdVssege512V: "vssege512.v",
	IdVssege64V: "vssege64.v",
	IdVssege8V: "vssege8.v",
	IdVssraVi: "vssra.vi",
	IdVssraVv: "vssra.vv",
	IdVssraVx: "vssra.vx",
	IdVssrlVi: "vssrl.vi",
	IdVssrlVv: "vssrl.vv",
	IdVssrlVx: "vssrl.vx",
	IdVsssege1024V: "vsssege1024.v",
	IdVsssege128V: "vsssege128.v",
	IdVsssege16V: "vsssege16.v",
	IdVsssege256V: "vsssege256.v",
	IdVsssege32V: "vsssege32.v",
	IdVsssege512V: "vsssege512.v",
	IdVsssege64V: "vsssege64.v",
	IdVsssege8V: "vsssege8.v",
	IdVssubVv: "vssub.vv",
	IdVssubVx: "vssub.vx",
	IdVssubuVv: "vssubu.vv",
	IdVssubuVx: "vssubu.vx",
	IdVsubVv: "vsub.vv",
	IdVsubVx: "vsub.vx",
	IdVsuxei1024V: "vsuxei1024.v",
	IdVsuxei128V: "vsuxei128.v",
	IdVsuxei16V: "vsuxei16.v",
	IdVsuxei256V: "vsuxei256.v",
	IdVsuxei32V: "vsuxei32.v",
	IdVsuxei512V: "vsuxei512.v",
	IdVsuxei64V: "vsuxei64.v",
	IdVsuxei8V: "vsuxei8.v",
	IdVsuxsegei1024V: "vsuxsegei1024.v",
	IdVsuxsegei128V: "vsuxsegei128.v",
	IdVsuxsegei16V: "vsuxsegei16.v",
	IdVsuxsegei256V: "vsuxsegei256.v",
	IdVsuxsegei32V: "vsuxsegei32.v",
	IdVsuxsegei512V: "vsuxsegei512.v",
	IdVsuxsegei64V: "vsuxsegei64.v",
	IdVsuxsegei8V: "vsuxsegei8.v",
	IdVwaddVv: "vwadd.vv",
	IdVwaddVx: "vwadd.vx",
	IdVwaddWv: "vwadd.wv",
	IdVwaddWx: "vwadd.wx",
	IdVwadduVv: "vwaddu.vv",
	IdVwadduVx: "vwaddu.vx",
	IdVwadduWv: "vwaddu.wv",
	IdVwadduWx: "vwaddu.wx",
	IdVwmaccVv: "vwmacc.vv",
	IdVwmaccVx: "vwmacc.vx",
	IdVwmaccsuVv: "vwmaccsu.vv",
	IdVwmaccsuVx: "vwmaccsu.vx",
	IdVwmaccuVv: "vwmaccu.vv",
	IdVwmaccuVx: "vwmaccu.vx",
	IdVwmaccusVx: "vwmaccus.vx",
	IdVwmulVv: "vwmul.vv",
	IdVwmulVx: "vwmul.vx",
	IdVwmulsuVv: "vwmulsu.vv",
	IdVwmulsuVx: "vwmulsu.vx",
	IdVwmuluVv: "vwmulu.vv",
	IdVwmuluVx: "vwmulu.vx",
	IdVwredsumVs: "vwredsum.vs",
	IdVwredsumuVs: "vwredsumu.vs",
	IdVwsllVi: "vwsll.vi",
	IdVwsllVv: "vwsll.vv",
	IdVwsllVx: "vwsll.vx",
	IdVwsubVv: "vwsub.vv",
	IdVwsubVx: "vwsub.vx",
	IdVwsubWv: "vwsub.wv",
	IdVwsubWx: "vwsub.wx",
	IdVwsubuVv: "vwsubu.vv",
	IdVwsubuVx: "vwsubu.vx",
	IdVwsubuWv: "vwsubu.wv",
	IdVwsubuWx: "vwsubu.wx",
	IdVxorVi: "vxor.vi",
	IdVxorVv: "vxor.vv",
	IdVxorVx: "vxor.vx",
	IdVzextVf2: "vzext.vf2",
	IdVzextVf4: "vzext.vf4",
	IdVzextVf8: "vzext.vf8",
	IdWfi: "wfi",
	IdWrsNto: "wrs.nto",
	IdWrsSto: "wrs.sto",
	IdXnor: "xnor",
	IdXor: "xor",
	IdXori: "xori",
	IdXpermB: "xperm.b",
	IdXpermN: "xperm.n",
	IdZip: "zip",
}

// String returns the assembler mnemonic of the instruction.
func (id InstId) String() string {
	if id >= instIdCount {
		return "illegal"
	}
	return instNames[id]
}
